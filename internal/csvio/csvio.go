// Package csvio reads and writes the ledger as CSV.
package csvio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/afonsocarlos/cofre/internal/cli"
	"github.com/afonsocarlos/cofre/internal/editor"
	"github.com/afonsocarlos/cofre/internal/model"
	"github.com/afonsocarlos/cofre/internal/service"

	"github.com/gocarina/gocsv"
)

// Row is one CSV line of the exported ledger. Amounts are kept as text
// so exported files round-trip without precision loss.
type Row struct {
	Date     string `csv:"date"`
	Kind     string `csv:"kind"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
	Note     string `csv:"note"`
}

// DateFormat is the date layout used in CSV files.
const DateFormat = "2006-01-02"

// Export writes the joined transaction listing as CSV.
func Export(w io.Writer, listing []model.TransactionWithCategory) error {
	rows := make([]Row, 0, len(listing))
	for _, twc := range listing {
		rows = append(rows, Row{
			Date:     twc.Transaction.OccurredAt.Format(DateFormat),
			Kind:     string(twc.Transaction.Kind),
			Amount:   twc.Transaction.Amount.String(),
			Category: cli.CategoryName(twc.Category),
			Note:     twc.Transaction.Note,
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// Read parses CSV rows from the given reader.
func Read(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// Store is the subset of the persistence contract the importer writes
// through. Both the storage itself and an open database transaction
// satisfy it.
type Store interface {
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	UpsertTransaction(ctx context.Context, ref model.TransactionRef, txn model.Transaction) (int64, error)
}

// Import inserts all rows inside a single database transaction: either
// every row commits or, on the first invalid row, none do. onRow is
// called after each successful row for progress reporting; it may be
// nil.
func Import(ctx context.Context, store service.Storage, rows []Row, onRow func()) error {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}

	importer := NewImporter(tx)
	for i, row := range rows {
		if err := importer.ImportRow(ctx, row); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("line %d: %w", i+2, err) // +2 accounts for the header
		}
		if onRow != nil {
			onRow()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Importer inserts CSV rows into the store, resolving categories by
// name and creating the ones it has not seen before.
type Importer struct {
	store      Store
	categories map[string]int64
}

// NewImporter creates an Importer backed by the given store.
func NewImporter(store Store) *Importer {
	return &Importer{
		store:      store,
		categories: make(map[string]int64),
	}
}

// ImportRow validates one row and inserts it as a new transaction.
func (i *Importer) ImportRow(ctx context.Context, row Row) error {
	kind := model.Kind(strings.ToLower(strings.TrimSpace(row.Kind)))
	if !kind.Valid() {
		return fmt.Errorf("unknown kind %q", row.Kind)
	}

	amount, err := editor.ParseAmount(row.Amount)
	if err != nil {
		return fmt.Errorf("row amount %q: %w", row.Amount, err)
	}

	occurredAt, err := time.Parse(DateFormat, strings.TrimSpace(row.Date))
	if err != nil {
		return fmt.Errorf("row date %q: %w", row.Date, err)
	}

	categoryID, err := i.resolveCategory(ctx, row.Category)
	if err != nil {
		return err
	}

	txn := model.Transaction{
		Kind:       kind,
		Amount:     amount,
		CategoryID: categoryID,
		Note:       row.Note,
		OccurredAt: occurredAt,
	}

	if _, err := i.store.UpsertTransaction(ctx, model.NewTransaction(), txn); err != nil {
		return fmt.Errorf("failed to store row: %w", err)
	}
	return nil
}

func (i *Importer) resolveCategory(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("row has no category")
	}

	if id, ok := i.categories[name]; ok {
		return id, nil
	}

	existing, err := i.store.GetCategoryByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	if existing != nil {
		i.categories[name] = existing.ID
		return existing.ID, nil
	}

	created, err := i.store.CreateCategory(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	i.categories[name] = created.ID
	return created.ID, nil
}
