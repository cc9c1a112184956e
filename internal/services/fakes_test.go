package services

import (
	"context"
	"math"
	"sort"
	"time"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// fakeStore is an in-memory stand-in for the SQLite repository.
type fakeStore struct {
	categories   []core.Category
	transactions []core.Transaction
	nextTxID     int64
	createErr    error
}

func (f *fakeStore) addCategory(id int64, name string, typ core.TransactionType, keywords string) {
	f.categories = append(f.categories, core.Category{ID: id, Name: name, Type: typ, Keywords: keywords})
}

func (f *fakeStore) ListCategories(_ context.Context, skip, limit int) ([]core.Category, error) {
	out := make([]core.Category, len(f.categories))
	copy(out, f.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if skip >= len(out) {
		return []core.Category{}, nil
	}
	out = out[skip:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) GetCategoryByName(_ context.Context, name string) (*core.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeStore) CreateTransaction(_ context.Context, t core.Transaction) (*core.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextTxID++
	t.ID = f.nextTxID
	f.transactions = append(f.transactions, t)
	return &t, nil
}

func (f *fakeStore) GetTransaction(_ context.Context, id int64) (*core.Transaction, error) {
	for _, t := range f.transactions {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeStore) ListTransactions(_ context.Context, filter storage.TransactionFilter) ([]core.Transaction, error) {
	out := []core.Transaction{}
	for _, t := range f.transactions {
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.AccountID != nil && (t.AccountID == nil || *t.AccountID != *filter.AccountID) {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpdateTransaction(_ context.Context, id int64, patch core.TransactionPatch) (*core.Transaction, error) {
	for i, t := range f.transactions {
		if t.ID != id {
			continue
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.CategoryID != nil {
			t.CategoryID = patch.CategoryID
		}
		f.transactions[i] = t
		return &t, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeStore) DeleteTransaction(_ context.Context, id int64) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeStore) SumByCategory(_ context.Context, start, end time.Time) ([]storage.CategorySum, error) {
	byID := map[int64]*storage.CategorySum{}
	for _, t := range f.transactions {
		if t.CategoryID == nil || t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		sum, ok := byID[*t.CategoryID]
		if !ok {
			name := ""
			for _, c := range f.categories {
				if c.ID == *t.CategoryID {
					name = c.Name
				}
			}
			sum = &storage.CategorySum{CategoryID: *t.CategoryID, CategoryName: name}
			byID[*t.CategoryID] = sum
		}
		sum.Total += math.Abs(t.Amount)
		sum.Count++
	}

	out := []storage.CategorySum{}
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}
