package core

import (
	"errors"
	"strings"
	"time"
)

const (
	AccountBank       AccountType = "bank"
	AccountCreditCard AccountType = "credit_card"
	AccountCash       AccountType = "cash"
	AccountOther      AccountType = "other"

	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Fallback categories used when keyword matching finds nothing.
const (
	FallbackExpenseCategory = "その他支出"
	FallbackIncomeCategory  = "その他収入"
)

type (
	AccountType     string
	TransactionType string

	// Account is a money-holding entity transactions are attributed to.
	// Balance is caller-managed; it is not derived from transactions.
	Account struct {
		ID        int64       `json:"id"`
		Name      string      `json:"name"`
		Type      AccountType `json:"type"`
		Balance   float64     `json:"balance"`
		Currency  string      `json:"currency"`
		CreatedAt time.Time   `json:"created_at"`
		UpdatedAt time.Time   `json:"updated_at"`
	}

	// Category is a labeled bucket transactions are classified into.
	// Keywords is a comma-separated list of match terms for
	// auto-categorization; empty means the category is never auto-matched.
	Category struct {
		ID        int64           `json:"id"`
		Name      string          `json:"name"`
		Type      TransactionType `json:"type"`
		Keywords  string          `json:"keywords"`
		Icon      string          `json:"icon"`
		Color     string          `json:"color"`
		CreatedAt time.Time       `json:"created_at"`
	}

	// Transaction is a single dated monetary movement. Amount is signed:
	// positive for income, negative for expense. Type is stored redundantly
	// and must stay consistent with the sign.
	Transaction struct {
		ID          int64           `json:"id"`
		Date        time.Time       `json:"date"`
		Description string          `json:"description"`
		Amount      float64         `json:"amount"`
		Type        TransactionType `json:"type"`
		CategoryID  *int64          `json:"category_id"`
		AccountID   *int64          `json:"account_id"`
		Memo        string          `json:"memo"`
		IsRecurring int             `json:"is_recurring"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyDescription   = errors.New("empty description")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidMonth       = errors.New("invalid month")
)

// DeriveType classifies an amount by sign. Zero is expense; the boundary
// is intentional and must not change.
func DeriveType(amount float64) TransactionType {
	if amount > 0 {
		return TypeIncome
	}
	return TypeExpense
}

func (t AccountType) Valid() bool {
	switch t {
	case AccountBank, AccountCreditCard, AccountCash, AccountOther:
		return true
	}
	return false
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !a.Type.Valid() {
		return ErrInvalidAccountType
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// MatchKeywords splits the category's keyword list and reports whether any
// keyword is a literal substring of description. Empty keywords never match.
func (c Category) MatchKeywords(description string) bool {
	if c.Keywords == "" {
		return false
	}
	for _, kw := range strings.Split(c.Keywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" && strings.Contains(description, kw) {
			return true
		}
	}
	return false
}
