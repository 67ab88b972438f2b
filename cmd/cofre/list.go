package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/ledger"
	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		from   string
		to     string
		recent int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `Display recorded transactions, newest first.

With --from/--to the listing is restricted to the inclusive date range.
With --recent N only the latest N entries are shown.`,
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
			if from != "" || to != "" {
				start, end, periodErr := parsePeriod(from, to)
				if periodErr != nil {
					return periodErr
				}
				listing, err = store.ListTransactionsByPeriod(ctx, start, end)
			} else {
				listing, err = store.ListTransactions(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if cmd.Flags().Changed("recent") {
				listing = ledger.Recent(listing, recent)
			}

			if len(listing) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found. Use 'cofre add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Note"))

			for _, twc := range listing {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					twc.Transaction.ID,
					cli.FormatDate(twc.Transaction.OccurredAt),
					cli.FormatSignedAmount(twc.Transaction.Kind, twc.Transaction.Amount),
					cli.FormatCategoryLink(twc.Category),
					twc.Transaction.Note)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&recent, "recent", 0, "show only the latest N entries")

	return cmd
}
