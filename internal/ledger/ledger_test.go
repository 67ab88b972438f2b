package ledger

import (
	"testing"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind model.Kind, amount string, d time.Time) model.Transaction {
	return model.Transaction{
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: d,
	}
}

func date(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		input       []model.Transaction
		wantIncome  string
		wantExpense string
		wantBalance string
	}{
		{
			name:        "empty input yields zero summary",
			input:       nil,
			wantIncome:  "0",
			wantExpense: "0",
			wantBalance: "0",
		},
		{
			name: "mixed kinds partition completely",
			input: []model.Transaction{
				txn(model.KindIncome, "100", date(1)),
				txn(model.KindExpense, "40", date(2)),
				txn(model.KindExpense, "10", date(3)),
			},
			wantIncome:  "100",
			wantExpense: "50",
			wantBalance: "50",
		},
		{
			name: "expenses can exceed income",
			input: []model.Transaction{
				txn(model.KindIncome, "25.50", date(1)),
				txn(model.KindExpense, "30.25", date(2)),
			},
			wantIncome:  "25.5",
			wantExpense: "30.25",
			wantBalance: "-4.75",
		},
		{
			name: "decimal sums stay exact",
			input: []model.Transaction{
				txn(model.KindIncome, "0.1", date(1)),
				txn(model.KindIncome, "0.2", date(2)),
			},
			wantIncome:  "0.3",
			wantExpense: "0",
			wantBalance: "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.input)

			assert.True(t, got.TotalIncome.Equal(decimal.RequireFromString(tt.wantIncome)),
				"income = %s, want %s", got.TotalIncome, tt.wantIncome)
			assert.True(t, got.TotalExpense.Equal(decimal.RequireFromString(tt.wantExpense)),
				"expense = %s, want %s", got.TotalExpense, tt.wantExpense)
			assert.True(t, got.Balance.Equal(decimal.RequireFromString(tt.wantBalance)),
				"balance = %s, want %s", got.Balance, tt.wantBalance)

			// Invariant: balance is always income minus expense
			assert.True(t, got.Balance.Equal(got.TotalIncome.Sub(got.TotalExpense)))
		})
	}
}

func TestFilterByPeriod(t *testing.T) {
	input := []model.Transaction{
		txn(model.KindExpense, "5", date(5)),
		txn(model.KindExpense, "4", date(4)),
		txn(model.KindIncome, "3", date(3)),
		txn(model.KindExpense, "2", date(2)),
		txn(model.KindIncome, "1", date(1)),
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		got := FilterByPeriod(input, date(2), date(4))
		require.Len(t, got, 3)
		assert.True(t, got[0].OccurredAt.Equal(date(4)))
		assert.True(t, got[2].OccurredAt.Equal(date(2)))
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := FilterByPeriod(input, date(1), date(5))
		require.Len(t, got, 5)
		for i := range got {
			assert.True(t, got[i].OccurredAt.Equal(input[i].OccurredAt))
		}
	})

	t.Run("start after end yields empty", func(t *testing.T) {
		got := FilterByPeriod(input, date(4), date(2))
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterByPeriod(input, date(2), date(4))
		twice := FilterByPeriod(once, date(2), date(4))
		assert.Equal(t, once, twice)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FilterByPeriod(nil, date(1), date(5)))
	})
}

func TestRecent(t *testing.T) {
	listing := []model.TransactionWithCategory{
		{Transaction: txn(model.KindExpense, "3", date(3))},
		{Transaction: txn(model.KindExpense, "2", date(2))},
		{Transaction: txn(model.KindIncome, "1", date(1))},
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"fewer than available", 2, 2},
		{"exactly available", 3, 3},
		{"more than available", 10, 3},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recent(listing, tt.n)
			assert.Len(t, got, tt.want)
			// Prefix of the natural newest-first order
			for i := range got {
				assert.True(t, got[i].Transaction.OccurredAt.Equal(listing[i].Transaction.OccurredAt))
			}
		})
	}
}

func TestBare(t *testing.T) {
	listing := []model.TransactionWithCategory{
		{Transaction: txn(model.KindIncome, "10", date(2))},
		{Transaction: txn(model.KindExpense, "5", date(1))},
	}

	got := Bare(listing)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(5)))

	assert.Nil(t, Bare(nil))
}
