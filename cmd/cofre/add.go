package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/editor"
	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		categoryName string
		note         string
		dateText     string
	)

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount>",
		Short: "Record a new transaction",
		Long: `Record a new income or expense transaction.

The amount accepts both '.' and ',' as decimal separator and must be
positive. The category must already exist; create one first with
'cofre categories add'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind := model.Kind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown transaction kind %q: expected income or expense", args[0])
			}

			amount, err := editor.Validate(args[1], categoryName != "")
			if err != nil {
				return err
			}

			occurredAt := time.Now().UTC().Truncate(24 * time.Hour)
			if dateText != "" {
				occurredAt, err = parseDate(dateText)
				if err != nil {
					return err
				}
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

			category, err := store.GetCategoryByName(ctx, categoryName)
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				return fmt.Errorf("category %q does not exist; create it with 'cofre categories add'", categoryName)
			}

			ed := editor.New(store)
			id, err := ed.Upsert(ctx, model.NewTransaction(), kind, amount, category.ID, note, occurredAt)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s in %s (id %d)",
				kind, cli.FormatAmount(amount), category.Name, id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "category name (required)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note")
	cmd.Flags().StringVarP(&dateText, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")

	return cmd
}
