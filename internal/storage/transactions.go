package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/shopspring/decimal"
)

// ListTransactions returns every transaction joined with its category,
// newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.TransactionWithCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.listTransactionsTx(ctx, s.db, nil, nil)
}

// ListTransactionsByPeriod returns transactions whose date falls in the
// inclusive range [start, end], newest first. A start after end yields
// an empty result, not an error.
func (s *SQLiteStorage) ListTransactionsByPeriod(ctx context.Context, start, end time.Time) ([]model.TransactionWithCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.listTransactionsTx(ctx, s.db, &start, &end)
}

func (s *SQLiteStorage) listTransactionsTx(ctx context.Context, q queryable, start, end *time.Time) ([]model.TransactionWithCategory, error) {
	query := `
		SELECT t.id, t.kind, t.amount, t.category_id, t.note, t.occurred_at,
		       c.id, c.name, c.created_at
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id`

	args := []any{}
	if start != nil && end != nil {
		query += ` WHERE t.occurred_at BETWEEN ? AND ?`
		args = append(args, start.UnixMilli(), end.UnixMilli())
	}

	query += ` ORDER BY t.occurred_at DESC, t.id DESC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.TransactionWithCategory
	for rows.Next() {
		twc, scanErr := scanTransactionWithCategory(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, *twc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(result))
	return result, nil
}

// GetTransactionByID returns a single joined transaction, or nil when
// no row with the given id exists.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id int64) (*model.TransactionWithCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.getTransactionByIDTx(ctx, s.db, id)
}

func (s *SQLiteStorage) getTransactionByIDTx(ctx context.Context, q queryable, id int64) (*model.TransactionWithCategory, error) {
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.kind, t.amount, t.category_id, t.note, t.occurred_at,
		       c.id, c.name, c.created_at
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = ?`

	row := q.QueryRowContext(ctx, query, id)
	twc, err := scanTransactionWithCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil // Transaction not found
	}
	if err != nil {
		return nil, err
	}

	return twc, nil
}

// UpsertTransaction writes a whole transaction record. A new reference
// inserts and returns the assigned id; an existing reference replaces
// that record in full and returns the same id.
func (s *SQLiteStorage) UpsertTransaction(ctx context.Context, ref model.TransactionRef, txn model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(&txn); err != nil {
		return 0, err
	}
	return s.upsertTransactionTx(ctx, s.db, ref, txn)
}

func (s *SQLiteStorage) upsertTransactionTx(ctx context.Context, q queryable, ref model.TransactionRef, txn model.Transaction) (int64, error) {
	if id, ok := ref.Existing(); ok {
		query := `
			INSERT OR REPLACE INTO transactions (id, kind, amount, category_id, note, occurred_at)
			VALUES (?, ?, ?, ?, ?, ?)`

		_, err := q.ExecContext(ctx, query,
			id,
			string(txn.Kind),
			txn.Amount.String(),
			txn.CategoryID,
			txn.Note,
			txn.OccurredAt.UnixMilli(),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to replace transaction %d: %w", id, err)
		}

		slog.Info("replaced transaction", "id", id, "kind", txn.Kind, "amount", txn.Amount)
		return id, nil
	}

	query := `
		INSERT INTO transactions (kind, amount, category_id, note, occurred_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := q.ExecContext(ctx, query,
		string(txn.Kind),
		txn.Amount.String(),
		txn.CategoryID,
		txn.Note,
		txn.OccurredAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	slog.Info("created transaction", "id", id, "kind", txn.Kind, "amount", txn.Amount)
	return id, nil
}

// DeleteTransaction removes the record with the given id. Deleting an
// absent id is not an error.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return s.deleteTransactionTx(ctx, s.db, id)
}

func (s *SQLiteStorage) deleteTransactionTx(ctx context.Context, q queryable, id int64) error {
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	slog.Info("deleted transaction", "id", id, "found", affected > 0)
	return nil
}

// CountTransactions returns the number of stored transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	return s.countTransactionsTx(ctx, s.db)
}

func (s *SQLiteStorage) countTransactionsTx(ctx context.Context, q queryable) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransactionWithCategory(row scanner) (*model.TransactionWithCategory, error) {
	var (
		txn          model.Transaction
		kind         string
		amount       string
		categoryID   sql.NullInt64
		note         sql.NullString
		occurredAt   int64
		catID        sql.NullInt64
		catName      sql.NullString
		catCreatedAt sql.NullTime
	)

	err := row.Scan(&txn.ID, &kind, &amount, &categoryID, &note, &occurredAt,
		&catID, &catName, &catCreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
	}

	txn.Kind = model.Kind(kind)
	txn.Amount = parsed
	txn.CategoryID = categoryID.Int64
	txn.Note = note.String
	txn.OccurredAt = time.UnixMilli(occurredAt).UTC()

	link := model.MissingCategory()
	if catID.Valid {
		link = model.LinkedCategory(model.Category{
			ID:        catID.Int64,
			Name:      catName.String,
			CreatedAt: catCreatedAt.Time,
		})
	}

	return &model.TransactionWithCategory{
		Transaction: txn,
		Category:    link,
	}, nil
}
