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

const categoryColumns = "id, name, type, keywords, icon, color, created_at"

func scanCategory(row interface{ Scan(...any) error }) (core.Category, error) {
	var c core.Category
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Keywords, &c.Icon, &c.Color, &c.CreatedAt)
	return c, err
}

// ListCategories returns categories in id order. The categorizer depends
// on this order being stable: first keyword match wins.
func (r *SQLiteRepository) ListCategories(ctx context.Context, skip, limit int) ([]core.Category, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY id LIMIT ? OFFSET ?", limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []core.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, id int64) (*core.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) GetCategoryByName(ctx context.Context, name string) (*core.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE name = ?", name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (*core.Category, error) {
	c.CreatedAt = time.Now().UTC()
	if c.Icon == "" {
		c.Icon = "📁"
	}
	if c.Color == "" {
		c.Color = "#6B7280"
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (name, type, keywords, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Type, c.Keywords, c.Icon, c.Color, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("category insert id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", c.ID, "name", c.Name, "type", c.Type)
	return &c, nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, id int64, patch core.CategoryPatch) (*core.Category, error) {
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
	if patch.Keywords != nil {
		set = append(set, "keywords = ?")
		args = append(args, *patch.Keywords)
	}
	if patch.Icon != nil {
		set = append(set, "icon = ?")
		args = append(args, *patch.Icon)
	}
	if patch.Color != nil {
		set = append(set, "color = ?")
		args = append(args, *patch.Color)
	}

	if len(set) > 0 {
		args = append(args, id)
		res, err := r.db.ExecContext(ctx,
			"UPDATE categories SET "+joinSet(set)+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, core.ErrNotFound
		}
	}

	return r.GetCategory(ctx, id)
}

// DeleteCategory removes the category. Transactions referencing it keep
// existing with a nulled category_id (ON DELETE SET NULL), never cascade.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Category deleted", "id", id)
	return nil
}

// CountCategories gates the startup seed.
func (r *SQLiteRepository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}
