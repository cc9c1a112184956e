package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kakeibo/internal/core"
)

// categoryScanLimit bounds the keyword scan. Far above any realistic
// category count; listing must not silently truncate.
const categoryScanLimit = 1000

// Categorizer assigns a category to a transaction description by
// substring-matching the description against each category's keyword list.
// Categories are read fresh per call; the system is request-scoped with
// no in-process caching.
type Categorizer struct {
	categories CategoryReader
}

func NewCategorizer(categories CategoryReader) *Categorizer {
	return &Categorizer{categories: categories}
}

// Categorize returns the id of the first category (in id order) with a
// keyword contained in description. First match wins, not best match.
// When nothing matches it falls back to the その他支出/その他収入 category,
// and to nil when neither exists.
func (c *Categorizer) Categorize(ctx context.Context, description string) (*int64, error) {
	categories, err := c.categories.ListCategories(ctx, 0, categoryScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	for _, cat := range categories {
		if cat.MatchKeywords(description) {
			slog.DebugContext(ctx, "Auto-categorized by keyword",
				"description", description, "category_id", cat.ID, "category", cat.Name)
			return &cat.ID, nil
		}
	}

	for _, name := range []string{core.FallbackExpenseCategory, core.FallbackIncomeCategory} {
		other, err := c.categories.GetCategoryByName(ctx, name)
		if errors.Is(err, core.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lookup fallback category: %w", err)
		}
		return &other.ID, nil
	}

	return nil, nil
}
