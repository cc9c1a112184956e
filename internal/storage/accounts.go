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

func (r *SQLiteRepository) ListAccounts(ctx context.Context, skip, limit int) ([]core.Account, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, balance, currency, created_at, updated_at
		FROM accounts ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []core.Account{}
	for rows.Next() {
		var a core.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *SQLiteRepository) GetAccount(ctx context.Context, id int64) (*core.Account, error) {
	var a core.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, balance, currency, created_at, updated_at
		FROM accounts WHERE id = ?`, id).
		Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

func (r *SQLiteRepository) CreateAccount(ctx context.Context, a core.Account) (*core.Account, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Currency == "" {
		a.Currency = "JPY"
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (name, type, balance, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.Name, a.Type, a.Balance, a.Currency, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("account insert id: %w", err)
	}

	slog.InfoContext(ctx, "Account created", "id", a.ID, "name", a.Name, "type", a.Type)
	return &a, nil
}

func (r *SQLiteRepository) UpdateAccount(ctx context.Context, id int64, patch core.AccountPatch) (*core.Account, error) {
	set := []string{}
	args := []any{}
	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Type != nil {
		set = append(set, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.Balance != nil {
		set = append(set, "balance = ?")
		args = append(args, *patch.Balance)
	}
	if patch.Currency != nil {
		set = append(set, "currency = ?")
		args = append(args, *patch.Currency)
	}

	if len(set) > 0 {
		set = append(set, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)

		res, err := r.db.ExecContext(ctx,
			"UPDATE accounts SET "+joinSet(set)+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update account: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, core.ErrNotFound
		}
	}

	return r.GetAccount(ctx, id)
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Account deleted", "id", id)
	return nil
}
