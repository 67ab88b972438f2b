package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/csvio"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Write the full transaction history as CSV, newest first.

Without --output the CSV is written to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			listing, err := store.ListTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			w := os.Stdout
			if output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", output, createErr)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil {
						slog.Error("failed to close output file", "error", closeErr)
					}
				}()
				w = f
			}

			if err := csvio.Export(w, listing); err != nil {
				return err
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(listing), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
