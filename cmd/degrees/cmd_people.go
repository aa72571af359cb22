package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newPeopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Look up people in the dataset",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "List everyone with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(); err != nil {
				return err
			}

			b, err := openBackend(cmd.Context(), io.Discard)
			if err != nil {
				return err
			}
			defer b.Close()

			found, err := b.SearchPeople(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flagFmt == formatJSON {
				return writeJSON(cmd.OutOrStdout(), found)
			}

			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Person not found.")

				return nil
			}

			writeCandidates(cmd.OutOrStdout(), found)

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "neighbors <id>",
		Short: "List a person's co-stars and the movies they share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(); err != nil {
				return err
			}

			b, err := openBackend(cmd.Context(), io.Discard)
			if err != nil {
				return err
			}
			defer b.Close()

			res, err := b.Neighbors(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flagFmt == formatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			writeNeighbors(cmd.OutOrStdout(), res)

			return nil
		},
	})

	return cmd
}
