package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// TransactionService wraps transaction persistence with the
// auto-categorization fallback applied on create.
type TransactionService struct {
	store       TransactionStore
	categorizer *Categorizer
}

func NewTransactionService(store TransactionStore, categorizer *Categorizer) *TransactionService {
	return &TransactionService{store: store, categorizer: categorizer}
}

// Create persists a transaction. An empty type is derived from the amount
// sign; a supplied type is trusted as-is. A nil category id is resolved
// through the categorizer before the row is written.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (*core.Transaction, error) {
	if t.Type == "" {
		t.Type = core.DeriveType(t.Amount)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if t.CategoryID == nil {
		id, err := s.categorizer.Categorize(ctx, t.Description)
		if err != nil {
			return nil, fmt.Errorf("auto-categorize: %w", err)
		}
		t.CategoryID = id
	}

	return s.store.CreateTransaction(ctx, t)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*core.Transaction, error) {
	return s.store.GetTransaction(ctx, id)
}

func (s *TransactionService) List(ctx context.Context, f storage.TransactionFilter) ([]core.Transaction, error) {
	return s.store.ListTransactions(ctx, f)
}

func (s *TransactionService) Update(ctx context.Context, id int64, patch core.TransactionPatch) (*core.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateTransaction(ctx, id, patch)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteTransaction(ctx, id)
}
