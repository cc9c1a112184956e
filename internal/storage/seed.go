package storage

import (
	"context"
	"fmt"
	"log/slog"

	"kakeibo/internal/core"
)

// Default category set inserted on first startup. その他支出 and その他収入
// carry no keywords on purpose: they are fallback targets, never
// keyword-matched.
var defaultCategories = []core.Category{
	{Name: "食費", Type: core.TypeExpense, Keywords: "スーパー,コンビニ,レストラン,カフェ,飲食"},
	{Name: "交通費", Type: core.TypeExpense, Keywords: "電車,バス,タクシー,ガソリン,駐車場"},
	{Name: "住居費", Type: core.TypeExpense, Keywords: "家賃,管理費,水道,電気,ガス"},
	{Name: "通信費", Type: core.TypeExpense, Keywords: "携帯,スマホ,インターネット,Wi-Fi"},
	{Name: "日用品", Type: core.TypeExpense, Keywords: "ドラッグストア,薬局,クリーニング,雑貨"},
	{Name: "娯楽費", Type: core.TypeExpense, Keywords: "映画,書籍,ゲーム,趣味"},
	{Name: "医療費", Type: core.TypeExpense, Keywords: "病院,クリニック,薬局,歯科"},
	{Name: "衣服費", Type: core.TypeExpense, Keywords: "衣類,服,靴,ファッション"},
	{Name: "教育費", Type: core.TypeExpense, Keywords: "学校,授業料,教材,セミナー"},
	{Name: core.FallbackExpenseCategory, Type: core.TypeExpense, Keywords: ""},
	{Name: "給料", Type: core.TypeIncome, Keywords: "給与,給料,賞与,ボーナス"},
	{Name: "副業", Type: core.TypeIncome, Keywords: "副業,フリーランス"},
	{Name: core.FallbackIncomeCategory, Type: core.TypeIncome, Keywords: ""},
}

// SeedDefaultCategories inserts the default category set when the table is
// empty. Idempotent: a non-empty table leaves the data untouched.
func (r *SQLiteRepository) SeedDefaultCategories(ctx context.Context) error {
	count, err := r.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range defaultCategories {
		if _, err := r.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}

	slog.InfoContext(ctx, "Default categories seeded", "count", len(defaultCategories))
	return nil
}
