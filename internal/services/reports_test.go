package services

import (
	"context"
	"math"
	"testing"
	"time"

	"kakeibo/internal/core"
)

func addTx(store *fakeStore, date time.Time, amount float64, typ core.TransactionType, categoryID *int64) {
	store.nextTxID++
	store.transactions = append(store.transactions, core.Transaction{
		ID: store.nextTxID, Date: date, Description: "x", Amount: amount, Type: typ, CategoryID: categoryID,
	})
}

func TestMonthlyReport(t *testing.T) {
	store := &fakeStore{}
	store.addCategory(1, "食費", core.TypeExpense, "")
	store.addCategory(2, "給料", core.TypeIncome, "")
	food, salary := int64(1), int64(2)

	addTx(store, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), -3000, core.TypeExpense, &food)
	addTx(store, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), -1000, core.TypeExpense, &food)
	addTx(store, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), 250000, core.TypeIncome, &salary)
	// Outside the month, must be ignored
	addTx(store, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), -9999, core.TypeExpense, &food)

	report, err := NewReportService(store).Monthly(context.Background(), 2024, 2)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}

	if report.TotalIncome != 250000 {
		t.Errorf("total_income = %v", report.TotalIncome)
	}
	if report.TotalExpense != 4000 {
		t.Errorf("total_expense = %v, want 4000 (absolute)", report.TotalExpense)
	}
	if report.Net != 246000 {
		t.Errorf("net = %v", report.Net)
	}

	if len(report.ByCategory) != 2 {
		t.Fatalf("by_category = %+v", report.ByCategory)
	}
	foodSummary := report.ByCategory[0]
	if foodSummary.CategoryID != food || foodSummary.Total != 4000 || foodSummary.Count != 2 {
		t.Errorf("food summary = %+v", foodSummary)
	}
	if math.Abs(foodSummary.Percentage-100) > 1e-9 {
		t.Errorf("food percentage = %v, want 100", foodSummary.Percentage)
	}
	// The denominator is always total_expense, even for income categories.
	salarySummary := report.ByCategory[1]
	wantPct := 250000.0 / 4000 * 100
	if math.Abs(salarySummary.Percentage-wantPct) > 1e-9 {
		t.Errorf("salary percentage = %v, want %v", salarySummary.Percentage, wantPct)
	}
}

func TestMonthlyReportZeroExpenseGuard(t *testing.T) {
	store := &fakeStore{}
	store.addCategory(2, "給料", core.TypeIncome, "")
	salary := int64(2)
	addTx(store, time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), 250000, core.TypeIncome, &salary)

	report, err := NewReportService(store).Monthly(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if report.TotalExpense != 0 {
		t.Fatalf("total_expense = %v", report.TotalExpense)
	}
	for _, s := range report.ByCategory {
		if s.Percentage != 0 {
			t.Errorf("percentage = %v with zero expenses, want 0", s.Percentage)
		}
	}
}

func TestMonthlyReportEmptyMonth(t *testing.T) {
	report, err := NewReportService(&fakeStore{}).Monthly(context.Background(), 2024, 7)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if report.TotalIncome != 0 || report.TotalExpense != 0 || report.Net != 0 {
		t.Errorf("empty month totals: %+v", report)
	}
	if report.ByCategory == nil || len(report.ByCategory) != 0 {
		t.Errorf("by_category should be an empty list, got %#v", report.ByCategory)
	}
}

func TestMonthlyReportInvalidMonth(t *testing.T) {
	if _, err := NewReportService(&fakeStore{}).Monthly(context.Background(), 2024, 13); err != core.ErrInvalidMonth {
		t.Errorf("got %v, want ErrInvalidMonth", err)
	}
}
