package services

import (
	"context"
	"testing"
	"time"

	"kakeibo/internal/core"
)

func newTransactionService(store *fakeStore) *TransactionService {
	return NewTransactionService(store, NewCategorizer(store))
}

func TestCreateDerivesTypeWhenEmpty(t *testing.T) {
	store := &fakeStore{}
	svc := newTransactionService(store)
	ctx := context.Background()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	expense, err := svc.Create(ctx, core.Transaction{Date: date, Description: "買い物", Amount: -1500})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if expense.Type != core.TypeExpense {
		t.Errorf("amount -1500: type = %q, want expense", expense.Type)
	}

	income, err := svc.Create(ctx, core.Transaction{Date: date, Description: "入金", Amount: 2000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if income.Type != core.TypeIncome {
		t.Errorf("amount 2000: type = %q, want income", income.Type)
	}
}

func TestCreateTrustsSuppliedType(t *testing.T) {
	store := &fakeStore{}
	svc := newTransactionService(store)

	// A supplied type is not re-derived on direct creation.
	got, err := svc.Create(context.Background(), core.Transaction{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "返金",
		Amount:      -500,
		Type:        core.TypeIncome,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Type != core.TypeIncome {
		t.Errorf("type = %q, want the caller-supplied income", got.Type)
	}
}

func TestCreateAppliesCategorizerFallback(t *testing.T) {
	store := &fakeStore{}
	store.addCategory(1, "食費", core.TypeExpense, "スーパー,コンビニ")
	store.addCategory(10, core.FallbackExpenseCategory, core.TypeExpense, "")
	svc := newTransactionService(store)
	ctx := context.Background()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	matched, err := svc.Create(ctx, core.Transaction{Date: date, Description: "コンビニ弁当", Amount: -600})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if matched.CategoryID == nil || *matched.CategoryID != 1 {
		t.Errorf("category = %v, want keyword match 1", matched.CategoryID)
	}

	fallback, err := svc.Create(ctx, core.Transaction{Date: date, Description: "謎の支払い", Amount: -100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fallback.CategoryID == nil || *fallback.CategoryID != 10 {
		t.Errorf("category = %v, want fallback 10", fallback.CategoryID)
	}

	explicit := int64(1)
	kept, err := svc.Create(ctx, core.Transaction{
		Date: date, Description: "謎の支払い", Amount: -100, CategoryID: &explicit,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if kept.CategoryID == nil || *kept.CategoryID != 1 {
		t.Errorf("explicit category overridden: %v", kept.CategoryID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTransactionService(&fakeStore{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, core.Transaction{
		Description: "no date", Amount: -100,
	}); err != core.ErrInvalidDate {
		t.Errorf("zero date: got %v, want ErrInvalidDate", err)
	}

	if _, err := svc.Create(ctx, core.Transaction{
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: -100,
	}); err != core.ErrEmptyDescription {
		t.Errorf("empty description: got %v, want ErrEmptyDescription", err)
	}
}
