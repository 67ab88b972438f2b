// Package testutil provides test helpers for packages that need a real
// store: an in-memory database with migrations applied and seed data.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/storage"

	"github.com/shopspring/decimal"
)

// TestDB is an in-memory store plus the categories seeded into it,
// keyed by name.
type TestDB struct {
	Storage    *storage.SQLiteStorage
	Categories map[string]model.Category
	t          *testing.T
}

// SetupTestDB creates a migrated in-memory database seeded with the
// given category names. Cleanup is registered automatically.
func SetupTestDB(t *testing.T, categoryNames ...string) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	cats := make(map[string]model.Category, len(categoryNames))
	for _, name := range categoryNames {
		cat, createErr := store.CreateCategory(ctx, name)
		if createErr != nil {
			t.Fatalf("failed to seed category %q: %v", name, createErr)
		}
		cats[name] = *cat
	}

	return &TestDB{
		Storage:    store,
		Categories: cats,
		t:          t,
	}
}

// MustCategory returns the seeded category with the given name or fails
// the test.
func (db *TestDB) MustCategory(name string) model.Category {
	db.t.Helper()

	cat, ok := db.Categories[name]
	if !ok {
		db.t.Fatalf("category %q was not seeded", name)
	}
	return cat
}

// SeedTransaction inserts a transaction and returns its assigned id.
func (db *TestDB) SeedTransaction(kind model.Kind, amount string, categoryName string, occurredAt time.Time) int64 {
	db.t.Helper()

	cat := db.MustCategory(categoryName)
	id, err := db.Storage.UpsertTransaction(context.Background(), model.NewTransaction(), model.Transaction{
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
		CategoryID: cat.ID,
		OccurredAt: occurredAt,
	})
	if err != nil {
		db.t.Fatalf("failed to seed transaction: %v", err)
	}
	return id
}
