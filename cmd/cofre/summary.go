package main

import (
	"fmt"
	"log/slog"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/ledger"
	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func summaryCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "View income, expense, and balance totals",
		Long: `Compute total income, total expense, and the resulting balance over
the whole history or, with --from/--to, over an inclusive date range.`,
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

			var listing []model.TransactionWithCategory
			period := "all time"
			if from != "" || to != "" {
				start, end, periodErr := parsePeriod(from, to)
				if periodErr != nil {
					return periodErr
				}
				listing, err = store.ListTransactionsByPeriod(ctx, start, end)
				period = fmt.Sprintf("%s to %s", orOpen(from), orOpen(to))
			} else {
				listing, err = store.ListTransactions(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			summary := ledger.Summarize(ledger.Bare(listing))

			if name := viper.GetString("user.name"); name != "" {
				fmt.Println(cli.FormatTitle(fmt.Sprintf("Hello, %s", name)))
			}

			content := fmt.Sprintf("Income:   %s\nExpense:  %s\nBalance:  %s\nEntries:  %d",
				cli.IncomeStyle.Render(cli.FormatAmount(summary.TotalIncome)),
				cli.ExpenseStyle.Render(cli.FormatAmount(summary.TotalExpense)),
				cli.FormatAmount(summary.Balance),
				len(listing))

			fmt.Println(cli.RenderBox(fmt.Sprintf("Summary (%s)", period), content))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")

	return cmd
}

// orOpen substitutes a placeholder for an unset period bound.
func orOpen(bound string) string {
	if bound == "" {
		return "…"
	}
	return bound
}
