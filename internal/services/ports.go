package services

import (
	"context"
	"time"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// Ports onto the storage collaborator. *storage.SQLiteRepository satisfies
// all of them; tests plug in fakes.
type (
	CategoryReader interface {
		ListCategories(ctx context.Context, skip, limit int) ([]core.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*core.Category, error)
	}

	TransactionStore interface {
		ListTransactions(ctx context.Context, f storage.TransactionFilter) ([]core.Transaction, error)
		GetTransaction(ctx context.Context, id int64) (*core.Transaction, error)
		CreateTransaction(ctx context.Context, t core.Transaction) (*core.Transaction, error)
		UpdateTransaction(ctx context.Context, id int64, patch core.TransactionPatch) (*core.Transaction, error)
		DeleteTransaction(ctx context.Context, id int64) error
	}

	// ReportStore provides the range queries the monthly report needs.
	ReportStore interface {
		ListTransactions(ctx context.Context, f storage.TransactionFilter) ([]core.Transaction, error)
		SumByCategory(ctx context.Context, start, end time.Time) ([]storage.CategorySum, error)
	}

	// TransactionCreator is the importer's view of transaction creation.
	TransactionCreator interface {
		Create(ctx context.Context, t core.Transaction) (*core.Transaction, error)
	}
)
