package core

// Sparse patch structs for partial updates. Only non-nil fields are
// applied; absent fields never overwrite stored values with defaults.

type AccountPatch struct {
	Name     *string      `json:"name"`
	Type     *AccountType `json:"type"`
	Balance  *float64     `json:"balance"`
	Currency *string      `json:"currency"`
}

type CategoryPatch struct {
	Name     *string          `json:"name"`
	Type     *TransactionType `json:"type"`
	Keywords *string          `json:"keywords"`
	Icon     *string          `json:"icon"`
	Color    *string          `json:"color"`
}

type TransactionPatch struct {
	Date        *DateTime        `json:"date"`
	Description *string          `json:"description"`
	Amount      *float64         `json:"amount"`
	Type        *TransactionType `json:"type"`
	CategoryID  *int64           `json:"category_id"`
	AccountID   *int64           `json:"account_id"`
	Memo        *string          `json:"memo"`
	IsRecurring *int             `json:"is_recurring"`
}

func (p AccountPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrEmptyName
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidAccountType
	}
	return nil
}

func (p CategoryPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrEmptyName
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

func (p TransactionPatch) Validate() error {
	if p.Description != nil && *p.Description == "" {
		return ErrEmptyDescription
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}
