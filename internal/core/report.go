package core

import "time"

// MonthlyReport aggregates one calendar month of transactions.
type MonthlyReport struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	TotalIncome  float64           `json:"total_income"`
	TotalExpense float64           `json:"total_expense"`
	Net          float64           `json:"net"`
	ByCategory   []CategorySummary `json:"by_category"`
}

// CategorySummary is one by_category entry. Percentage is the category's
// share of total_expense, regardless of the category's own type.
type CategorySummary struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// ImportResult reports the outcome of a CSV import. Errors is nil when
// every row imported cleanly, never an empty list.
type ImportResult struct {
	Success       bool     `json:"success"`
	ImportedCount int      `json:"imported_count"`
	TotalRows     int      `json:"total_rows"`
	Errors        []string `json:"errors"`
}

// MonthRange returns the inclusive range covering year/month: the first
// instant of the month through one second before the next month starts.
// December rolls into January of the following year.
func MonthRange(year, month int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}
