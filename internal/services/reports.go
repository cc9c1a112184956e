package services

import (
	"context"
	"fmt"
	"math"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// reportFetchLimit bounds the month query. Large enough that pagination
// never silently truncates a report.
const reportFetchLimit = 10000

// ReportService computes monthly income/expense summaries.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Monthly aggregates the calendar month: total income, total expense
// (absolute), net, and per-category totals. Category percentages are the
// share of total_expense regardless of the category's own type, and 0
// when the month has no expenses.
func (s *ReportService) Monthly(ctx context.Context, year, month int) (*core.MonthlyReport, error) {
	start, end, err := core.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.ListTransactions(ctx, storage.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
		Limit:     reportFetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch month transactions: %w", err)
	}

	report := &core.MonthlyReport{
		Year:       year,
		Month:      month,
		ByCategory: []core.CategorySummary{},
	}

	for _, t := range transactions {
		switch t.Type {
		case core.TypeIncome:
			report.TotalIncome += t.Amount
		case core.TypeExpense:
			report.TotalExpense += math.Abs(t.Amount)
		}
	}
	report.Net = report.TotalIncome - report.TotalExpense

	sums, err := s.store.SumByCategory(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}

	for _, sum := range sums {
		percentage := 0.0
		if report.TotalExpense > 0 {
			percentage = sum.Total / report.TotalExpense * 100
		}
		report.ByCategory = append(report.ByCategory, core.CategorySummary{
			CategoryID:   sum.CategoryID,
			CategoryName: sum.CategoryName,
			Total:        sum.Total,
			Count:        sum.Count,
			Percentage:   percentage,
		})
	}

	return report, nil
}
