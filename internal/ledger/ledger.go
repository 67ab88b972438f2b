// Package ledger derives summaries and filtered views from transaction
// sets without mutating them.
package ledger

import (
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
)

// Summarize partitions transactions by kind and returns the total
// income, total expense, and their difference. An empty input yields a
// zero summary.
func Summarize(transactions []model.Transaction) model.Summary {
	var summary model.Summary
	for _, txn := range transactions {
		switch txn.Kind {
		case model.KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case model.KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}

// FilterByPeriod returns the transactions whose date falls in the
// inclusive range [start, end], preserving input order. A start after
// end yields an empty result.
func FilterByPeriod(transactions []model.Transaction, start, end time.Time) []model.Transaction {
	if start.After(end) {
		return nil
	}

	var filtered []model.Transaction
	for _, txn := range transactions {
		if txn.OccurredAt.Before(start) || txn.OccurredAt.After(end) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// Recent returns the first n items of the store's natural newest-first
// listing, or all of them when fewer are available.
func Recent(transactions []model.TransactionWithCategory, n int) []model.TransactionWithCategory {
	if n <= 0 {
		return nil
	}
	if n > len(transactions) {
		n = len(transactions)
	}
	return transactions[:n]
}

// Bare strips the joined projection back to plain transactions, in
// order. Listing returns the joined view; the summary math only needs
// the records themselves.
func Bare(transactions []model.TransactionWithCategory) []model.Transaction {
	if transactions == nil {
		return nil
	}
	bare := make([]model.Transaction, len(transactions))
	for i, twc := range transactions {
		bare[i] = twc.Transaction
	}
	return bare
}
