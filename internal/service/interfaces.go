// Package service defines the interfaces between the persistence layer
// and its consumers.
package service

import (
	"context"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
)

// TransactionStore is the persistence contract for transactions. All
// listings are ordered by occurrence date descending, newest first.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]model.TransactionWithCategory, error)
	ListTransactionsByPeriod(ctx context.Context, start, end time.Time) ([]model.TransactionWithCategory, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.TransactionWithCategory, error)
	UpsertTransaction(ctx context.Context, ref model.TransactionRef, txn model.Transaction) (int64, error)
	DeleteTransaction(ctx context.Context, id int64) error
	CountTransactions(ctx context.Context) (int, error)
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// Storage is the full contract for the persistence layer.
type Storage interface {
	TransactionStore
	CategoryStore

	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit() error
	Rollback() error

	TransactionStore
	CategoryStore
}
