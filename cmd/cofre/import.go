package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/csvio"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from CSV",
		Long: `Import transactions from a CSV file with columns
date,kind,amount,category,note.

Categories are matched by name; unknown ones are created on the fly.
The whole file is imported in a single transaction: an invalid row
aborts the import, reports the offending line, and leaves the ledger
untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			rows, err := csvio.Read(f)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println(cli.FormatInfo("Nothing to import."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			bar := progressbar.NewOptions(len(rows),
				progressbar.OptionSetDescription("Importing transactions"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			if err := csvio.Import(ctx, store, rows, func() { _ = bar.Add(1) }); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %s", len(rows), args[0])))
			return nil
		},
	}
}
