package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kakeibo/internal/core"
)

// TransactionFilter narrows ListTransactions. Nil fields are ignored.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	AccountID  *int64
	Type       core.TransactionType
	Skip       int
	Limit      int
}

const transactionColumns = `id, date, description, amount, type,
	category_id, account_id, memo, is_recurring, created_at, updated_at`

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var t core.Transaction
	var categoryID, accountID sql.NullInt64
	err := row.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Type,
		&categoryID, &accountID, &t.Memo, &t.IsRecurring, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return t, err
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if accountID.Valid {
		t.AccountID = &accountID.Int64
	}
	return t, nil
}

// ListTransactions returns transactions matching the filter, newest first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, f TransactionFilter) ([]core.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE 1=1"
	args := []any{}

	if f.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, *f.EndDate)
	}
	if f.CategoryID != nil {
		query += " AND category_id = ?"
		args = append(args, *f.CategoryID)
	}
	if f.AccountID != nil {
		query += " AND account_id = ?"
		args = append(args, *f.AccountID)
	}
	if f.Type != "" {
		query += " AND type = ?"
		args = append(args, f.Type)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY date DESC LIMIT ? OFFSET ?"
	args = append(args, limit, f.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []core.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (*core.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (*core.Transaction, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (date, description, amount, type, category_id,
			account_id, memo, is_recurring, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Date, t.Description, t.Amount, t.Type, nullableID(t.CategoryID),
		nullableID(t.AccountID), t.Memo, t.IsRecurring, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("transaction insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", t.ID, "description", t.Description, "amount", t.Amount, "type", t.Type)
	return &t, nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, id int64, patch core.TransactionPatch) (*core.Transaction, error) {
	set := []string{}
	args := []any{}
	if patch.Date != nil {
		set = append(set, "date = ?")
		args = append(args, patch.Date.Time)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Amount != nil {
		set = append(set, "amount = ?")
		args = append(args, *patch.Amount)
	}
	if patch.Type != nil {
		set = append(set, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.CategoryID != nil {
		set = append(set, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.AccountID != nil {
		set = append(set, "account_id = ?")
		args = append(args, *patch.AccountID)
	}
	if patch.Memo != nil {
		set = append(set, "memo = ?")
		args = append(args, *patch.Memo)
	}
	if patch.IsRecurring != nil {
		set = append(set, "is_recurring = ?")
		args = append(args, *patch.IsRecurring)
	}

	if len(set) > 0 {
		set = append(set, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)

		res, err := r.db.ExecContext(ctx,
			"UPDATE transactions SET "+joinSet(set)+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update transaction: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, core.ErrNotFound
		}
	}

	return r.GetTransaction(ctx, id)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// SumByCategory aggregates transactions in [start, end] per category:
// sum of absolute amounts and row count, ordered by category id.
func (r *SQLiteRepository) SumByCategory(ctx context.Context, start, end time.Time) ([]CategorySum, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, SUM(ABS(t.amount)), COUNT(t.id)
		FROM categories c
		JOIN transactions t ON t.category_id = c.id
		WHERE t.date >= ? AND t.date <= ?
		GROUP BY c.id
		ORDER BY c.id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}
	defer rows.Close()

	sums := []CategorySum{}
	for rows.Next() {
		var s CategorySum
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.Total, &s.Count); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// CategorySum is one grouped aggregation row.
type CategorySum struct {
	CategoryID   int64
	CategoryName string
	Total        float64
	Count        int
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
