package main

import (
	"fmt"
	"log/slog"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/editor"
	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		kindText     string
		amountText   string
		categoryName string
		note         string
		dateText     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long: `Replace fields of an existing transaction.

Only the fields given as flags change; the rest keep their stored
values. The whole record is rewritten either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
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

			ed := editor.New(store)
			ref := model.ExistingTransaction(id)

			current, err := ed.PrepareForEdit(ctx, ref)
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("transaction %d does not exist", id)
			}

			// Start from the stored values and overlay the given flags
			txn := current.Transaction

			if cmd.Flags().Changed("kind") {
				kind := model.Kind(kindText)
				if !kind.Valid() {
					return fmt.Errorf("unknown transaction kind %q: expected income or expense", kindText)
				}
				txn.Kind = kind
			}
			if cmd.Flags().Changed("amount") {
				txn.Amount, err = editor.ParseAmount(amountText)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				category, catErr := store.GetCategoryByName(ctx, categoryName)
				if catErr != nil {
					return fmt.Errorf("failed to look up category: %w", catErr)
				}
				if category == nil {
					return fmt.Errorf("category %q does not exist; create it with 'cofre categories add'", categoryName)
				}
				txn.CategoryID = category.ID
			}
			if cmd.Flags().Changed("note") {
				txn.Note = note
			}
			if cmd.Flags().Changed("date") {
				txn.OccurredAt, err = parseDate(dateText)
				if err != nil {
					return err
				}
			}

			if _, err := ed.Upsert(ctx, ref, txn.Kind, txn.Amount, txn.CategoryID, txn.Note, txn.OccurredAt); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindText, "kind", "k", "", "transaction kind (income or expense)")
	cmd.Flags().StringVarP(&amountText, "amount", "a", "", "amount")
	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&note, "note", "n", "", "note")
	cmd.Flags().StringVarP(&dateText, "date", "d", "", "transaction date (YYYY-MM-DD)")

	return cmd
}
