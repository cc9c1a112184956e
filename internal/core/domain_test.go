package core

import (
	"testing"
	"time"
)

func TestDeriveType(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   TransactionType
	}{
		{"positive is income", 2000, TypeIncome},
		{"negative is expense", -1500, TypeExpense},
		{"zero is expense", 0, TypeExpense},
		{"small positive", 0.01, TypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveType(tt.amount); got != tt.want {
				t.Errorf("DeriveType(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestCategoryMatchKeywords(t *testing.T) {
	tests := []struct {
		name        string
		keywords    string
		description string
		want        bool
	}{
		{"simple match", "スーパー,コンビニ", "スーパーマーケットで買い物", true},
		{"second keyword matches", "電車,バス", "バス定期券", true},
		{"no match", "家賃,管理費", "スーパーマーケット", false},
		{"empty keywords never match", "", "anything", false},
		{"whitespace around keywords trimmed", " カフェ , 飲食 ", "駅前のカフェ", true},
		{"empty keyword entries skipped", ",,  ,", "anything", false},
		{"case sensitive", "Cafe", "cafe latte", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Category{Name: "test", Type: TypeExpense, Keywords: tt.keywords}
			if got := c.MatchKeywords(tt.description); got != tt.want {
				t.Errorf("MatchKeywords(%q) with keywords %q = %v, want %v",
					tt.description, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestAccountValidate(t *testing.T) {
	valid := Account{Name: "三菱UFJ銀行", Type: AccountBank}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid account: %v", err)
	}

	if err := (Account{Name: "", Type: AccountBank}).Validate(); err != ErrEmptyName {
		t.Errorf("empty name: got %v, want ErrEmptyName", err)
	}
	if err := (Account{Name: "x", Type: "wallet"}).Validate(); err != ErrInvalidAccountType {
		t.Errorf("bad type: got %v, want ErrInvalidAccountType", err)
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "スーパーマーケット",
		Amount:      -3500,
		Type:        TypeExpense,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction: %v", err)
	}

	bad := valid
	bad.Date = time.Time{}
	if err := bad.Validate(); err != ErrInvalidDate {
		t.Errorf("zero date: got %v, want ErrInvalidDate", err)
	}

	bad = valid
	bad.Type = "transfer"
	if err := bad.Validate(); err != ErrInvalidType {
		t.Errorf("bad type: got %v, want ErrInvalidType", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024/01/15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-15 09:30:00", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), true},
		{"2024-01-15T09:30:00Z", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), true},
		{"15/01/2024", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error", tt.in)
			}
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
