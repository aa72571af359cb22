package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/persistorai/degrees/internal/models"
)

func newPathCmd() *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "path [source] [target]",
		Short: "Find the fewest movies linking two people",
		Long: "Find the fewest movies linking two people. Names are matched case-insensitively;\n" +
			"when a name matches several people you are asked to pick one by id.\n" +
			"With no arguments both names are read from standard input.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			// Prompts must not corrupt JSON on stdout.
			promptOut, progress := out, out
			if flagFmt == formatJSON {
				promptOut, progress = cmd.ErrOrStderr(), io.Discard
			}

			p := newPrompter(cmd.InOrStdin(), promptOut)

			source, target, err := pathArgs(p, args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			b, err := openBackend(ctx, progress)
			if err != nil {
				return err
			}
			defer b.Close()

			fromID, toID := source, target
			if !byID {
				if fromID, err = resolvePerson(ctx, b, p, source); err != nil {
					return err
				}

				if toID, err = resolvePerson(ctx, b, p, target); err != nil {
					return err
				}
			}

			res, err := b.ShortestPath(ctx, fromID, toID)
			connected := true

			switch {
			case errors.Is(err, models.ErrNotConnected):
				connected = false
			case err != nil:
				return err
			}

			if flagFmt == formatJSON {
				return writeJSON(out, pathReport{Connected: connected, Path: res})
			}

			if !connected {
				fmt.Fprintln(out, "Not connected.")

				return nil
			}

			writePath(out, res)

			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "ids", false, "Treat arguments as person ids instead of names")

	return cmd
}

func pathArgs(p *prompter, args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}

	source, err := p.ask("Name: ")
	if err != nil {
		return "", "", err
	}

	target, err := p.ask("Name: ")
	if err != nil {
		return "", "", err
	}

	return source, target, nil
}

func checkFormat() error {
	switch flagFmt {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", flagFmt)
	}
}
