package core

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "regular month",
			year:      2024, month: 6,
			wantStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "leap february spans the 29th",
			year:      2024, month: 2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "non-leap february",
			year:      2023, month: 2,
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december stays in the same year",
			year:      2024, month: 12,
			wantStart: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.year, tt.month)
			if err != nil {
				t.Fatalf("MonthRange(%d, %d) error = %v", tt.year, tt.month, err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestMonthRangeInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, _, err := MonthRange(2024, month); err != ErrInvalidMonth {
			t.Errorf("MonthRange(2024, %d) error = %v, want ErrInvalidMonth", month, err)
		}
	}
}
