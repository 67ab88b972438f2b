package main

import (
	"log/slog"

	"github.com/afonsocarlos/cofre/internal/tui"

	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse transaction history interactively",
		Long: `Open an interactive browser over the transaction history.

Navigate with the arrow keys, delete the selected entry with 'd',
refresh with 'r', and quit with 'q'.`,
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

			return tui.Run(ctx, store)
		},
	}
}
