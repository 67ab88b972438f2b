package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates income from expense transactions.
type Kind string

const (
	// KindIncome marks money coming in.
	KindIncome Kind = "income"
	// KindExpense marks money going out.
	KindExpense Kind = "expense"
)

// Valid reports whether the kind is one of the known discriminators.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single recorded income or expense entry.
// Amount is always positive; Kind carries the sign.
type Transaction struct {
	OccurredAt time.Time
	Kind       Kind
	Note       string
	Amount     decimal.Decimal
	ID         int64
	CategoryID int64
}

// TransactionRef identifies the target of an upsert: either a brand-new
// record or an existing one to be replaced in full. It exists so that a
// real row id can never collide with a "not yet persisted" sentinel.
type TransactionRef struct {
	id int64
}

// NewTransaction returns a reference to a record that has not been
// persisted yet. Upserting through it performs an insert.
func NewTransaction() TransactionRef {
	return TransactionRef{}
}

// ExistingTransaction returns a reference to the stored record with the
// given id. Upserting through it replaces that record.
func ExistingTransaction(id int64) TransactionRef {
	return TransactionRef{id: id}
}

// Existing returns the referenced row id and true when the reference
// points at a persisted record.
func (r TransactionRef) Existing() (int64, bool) {
	return r.id, r.id > 0
}

// CategoryLink is the result of joining a transaction to its category.
// The referenced category may have been deleted since the transaction
// was written, so callers must handle the missing case.
type CategoryLink struct {
	category *Category
}

// LinkedCategory wraps a resolved category.
func LinkedCategory(c Category) CategoryLink {
	return CategoryLink{category: &c}
}

// MissingCategory marks a dangling category reference.
func MissingCategory() CategoryLink {
	return CategoryLink{}
}

// Category returns the joined category and true, or the zero value and
// false when the reference is dangling.
func (l CategoryLink) Category() (Category, bool) {
	if l.category == nil {
		return Category{}, false
	}
	return *l.category, true
}

// TransactionWithCategory is the read-only projection produced by the
// store when listing: the transaction plus its (possibly missing)
// joined category. It is never persisted.
type TransactionWithCategory struct {
	Transaction Transaction
	Category    CategoryLink
}
