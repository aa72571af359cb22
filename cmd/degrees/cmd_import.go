package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/degrees/internal/config"
	"github.com/persistorai/degrees/internal/dataset"
	"github.com/persistorai/degrees/internal/store"
)

func newImportCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the CSV dataset in --data into SQLite or Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := config.NewLogger(os.Stderr, flagLogLevel, "text")
			ctx := cmd.Context()

			ds, report, err := dataset.LoadCSV(ctx, flagData, log)
			if err != nil {
				return err
			}

			dst := store.SourceConfig{Kind: to, SQLitePath: flagSQLite, DatabaseURL: flagDatabaseURL}
			if err := store.Import(ctx, dst, ds, log); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d people, %d movies and %d credits into %s.\n",
				report.People, report.Movies, report.Credits, to)

			if skipped := report.Skipped(); skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d invalid rows.\n", skipped)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", config.SourceSQLite, "Destination backend: sqlite|postgres")

	return cmd
}
