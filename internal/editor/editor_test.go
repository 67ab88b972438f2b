package editor

import (
	"context"
	"testing"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "dot separator", input: "10.50", want: "10.5"},
		{name: "comma separator", input: "10,50", want: "10.5"},
		{name: "integer", input: "5", want: "5"},
		{name: "surrounding whitespace", input: " 7,25 ", want: "7.25"},
		{name: "zero rejected", input: "0", wantErr: ErrInvalidAmount},
		{name: "negative rejected", input: "-3", wantErr: ErrInvalidAmount},
		{name: "empty rejected", input: "", wantErr: ErrInvalidAmount},
		{name: "garbage rejected", input: "abc", wantErr: ErrInvalidAmount},
		{name: "two separators rejected", input: "1,2.3", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		amount, err := Validate("10,50", true)
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := Validate("5", false)
		assert.ErrorIs(t, err, ErrMissingCategory)
	})

	t.Run("invalid amount wins over missing category", func(t *testing.T) {
		_, err := Validate("0", false)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func setupEditor(t *testing.T) (*Editor, *storage.SQLiteStorage, model.Category) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	cat, err := store.CreateCategory(ctx, "Groceries")
	require.NoError(t, err)

	return New(store), store, *cat
}

func TestEditor_PrepareForEdit(t *testing.T) {
	ctx := context.Background()
	ed, _, cat := setupEditor(t)

	occurredAt := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	id, err := ed.Upsert(ctx, model.NewTransaction(), model.KindExpense,
		decimal.RequireFromString("12.30"), cat.ID, "market", occurredAt)
	require.NoError(t, err)

	t.Run("new reference is a no-op", func(t *testing.T) {
		got, prepErr := ed.PrepareForEdit(ctx, model.NewTransaction())
		require.NoError(t, prepErr)
		assert.Nil(t, got)
	})

	t.Run("existing reference yields stored fields unchanged", func(t *testing.T) {
		got, prepErr := ed.PrepareForEdit(ctx, model.ExistingTransaction(id))
		require.NoError(t, prepErr)
		require.NotNil(t, got)

		assert.Equal(t, model.KindExpense, got.Transaction.Kind)
		assert.True(t, got.Transaction.Amount.Equal(decimal.RequireFromString("12.30")))
		assert.Equal(t, "market", got.Transaction.Note)
		assert.True(t, got.Transaction.OccurredAt.Equal(occurredAt))

		joined, ok := got.Category.Category()
		require.True(t, ok)
		assert.Equal(t, "Groceries", joined.Name)
	})

	t.Run("unknown id yields nothing", func(t *testing.T) {
		got, prepErr := ed.PrepareForEdit(ctx, model.ExistingTransaction(9999))
		require.NoError(t, prepErr)
		assert.Nil(t, got)
	})
}

func TestEditor_Upsert(t *testing.T) {
	ctx := context.Background()
	ed, store, cat := setupEditor(t)

	occurredAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("insert then list shows one more item", func(t *testing.T) {
		before, err := store.CountTransactions(ctx)
		require.NoError(t, err)

		_, err = ed.Upsert(ctx, model.NewTransaction(), model.KindIncome,
			decimal.NewFromInt(100), cat.ID, "", occurredAt)
		require.NoError(t, err)

		after, err := store.CountTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)
	})

	t.Run("replace updates without duplicating", func(t *testing.T) {
		id, err := ed.Upsert(ctx, model.NewTransaction(), model.KindExpense,
			decimal.NewFromInt(40), cat.ID, "old", occurredAt)
		require.NoError(t, err)

		before, err := store.CountTransactions(ctx)
		require.NoError(t, err)

		_, err = ed.Upsert(ctx, model.ExistingTransaction(id), model.KindExpense,
			decimal.NewFromInt(45), cat.ID, "new", occurredAt)
		require.NoError(t, err)

		after, err := store.CountTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after, "replace must not duplicate")

		got, err := store.GetTransactionByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Transaction.Amount.Equal(decimal.NewFromInt(45)))
		assert.Equal(t, "new", got.Transaction.Note)
	})

	t.Run("rejections happen before store access", func(t *testing.T) {
		_, err := ed.Upsert(ctx, model.NewTransaction(), model.Kind("transfer"),
			decimal.NewFromInt(1), cat.ID, "", occurredAt)
		assert.ErrorIs(t, err, ErrInvalidKind)

		_, err = ed.Upsert(ctx, model.NewTransaction(), model.KindExpense,
			decimal.Zero, cat.ID, "", occurredAt)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = ed.Upsert(ctx, model.NewTransaction(), model.KindExpense,
			decimal.NewFromInt(1), 0, "", occurredAt)
		assert.ErrorIs(t, err, ErrMissingCategory)
	})
}
