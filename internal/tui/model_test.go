package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/testutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedModel(t *testing.T) (Model, *testutil.TestDB) {
	t.Helper()

	db := testutil.SetupTestDB(t, "Groceries", "Salary")
	db.SeedTransaction(model.KindIncome, "1500", "Salary", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	db.SeedTransaction(model.KindExpense, "42.50", "Groceries", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))

	m := NewModel(context.Background(), db.Storage)
	msg := m.loadTransactions()()
	updated, _ := m.Update(msg)

	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded, db
}

func TestModel_LoadTransactions(t *testing.T) {
	m, _ := loadedModel(t)

	require.Len(t, m.listing, 2)
	// Newest first
	assert.Equal(t, model.KindExpense, m.listing[0].Transaction.Kind)

	view := m.View()
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "42.50")
	assert.Contains(t, view, "balance")
}

func TestModel_SummaryFooter(t *testing.T) {
	m, _ := loadedModel(t)

	view := m.View()
	assert.Contains(t, view, "2 entries")
	assert.Contains(t, view, "1500.00")
	assert.Contains(t, view, "1457.50")
}

func TestModel_DeleteSelected(t *testing.T) {
	m, db := loadedModel(t)

	selected, ok := m.selected()
	require.True(t, ok)

	msg := m.deleteTransaction(selected.Transaction.ID)()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	require.NotNil(t, cmd, "delete must trigger a reload")

	reload := cmd()
	updated, _ = m.Update(reload)
	m = updated.(Model)

	assert.Len(t, m.listing, 1)

	count, err := db.Storage.CountTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := loadedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_MissingCategoryRow(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t, "Doomed")
	db.SeedTransaction(model.KindExpense, "5", "Doomed", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Storage.DeleteCategory(ctx, db.MustCategory("Doomed").ID))

	m := NewModel(ctx, db.Storage)
	msg := m.loadTransactions()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	assert.True(t, strings.Contains(m.View(), "(missing)"))
}
