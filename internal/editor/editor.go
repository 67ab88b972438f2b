// Package editor validates user-entered transaction data and persists it
// as either a new record or a full replacement of an existing one.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/service"

	"github.com/shopspring/decimal"
)

// Validation errors surfaced at the form boundary, before any store
// access.
var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrMissingCategory = errors.New("a category must be selected")
	ErrInvalidKind     = errors.New("kind must be income or expense")
)

// ParseAmount parses user-entered amount text into a positive decimal.
// Both `.` and `,` are accepted as decimal separators; the comma form is
// normalized before parsing.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	text = strings.ReplaceAll(text, ",", ".")
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return amount, nil
}

// Validate checks user-entered form values and returns the parsed
// amount. The amount is checked first, then the category selection,
// matching the order errors are surfaced to the user.
func Validate(amountText string, categorySelected bool) (decimal.Decimal, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !categorySelected {
		return decimal.Decimal{}, ErrMissingCategory
	}
	return amount, nil
}

// Editor coordinates transaction edits against the persistence layer.
type Editor struct {
	store service.TransactionStore
}

// New creates an Editor backed by the given transaction store.
func New(store service.TransactionStore) *Editor {
	return &Editor{store: store}
}

// PrepareForEdit fetches the stored transaction and its (possibly
// missing) linked category so a caller can pre-populate an editing
// form. A reference to a new record yields (nil, nil): there is nothing
// to populate, and that is intentional rather than an error. An unknown
// id likewise yields (nil, nil).
func (e *Editor) PrepareForEdit(ctx context.Context, ref model.TransactionRef) (*model.TransactionWithCategory, error) {
	id, ok := ref.Existing()
	if !ok {
		return nil, nil
	}

	twc, err := e.store.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %d: %w", id, err)
	}
	return twc, nil
}

// Upsert constructs a transaction from the given fields and writes it
// through the store: an insert for a new reference, a whole-record
// replacement for an existing one. The caller's listing view becomes
// stale and must be re-queried afterwards.
func (e *Editor) Upsert(ctx context.Context, ref model.TransactionRef, kind model.Kind, amount decimal.Decimal, categoryID int64, note string, occurredAt time.Time) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if categoryID <= 0 {
		return 0, ErrMissingCategory
	}

	txn := model.Transaction{
		Kind:       kind,
		Amount:     amount,
		CategoryID: categoryID,
		Note:       note,
		OccurredAt: occurredAt,
	}

	id, err := e.store.UpsertTransaction(ctx, ref, txn)
	if err != nil {
		return 0, fmt.Errorf("failed to save transaction: %w", err)
	}
	return id, nil
}
