package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"kakeibo/internal/core"
)

// ErrInvalidImport marks fatal, whole-request import failures: bad file
// extension, undecodable content, malformed CSV, missing columns. Row-level
// problems never carry it; they land in ImportResult.Errors instead.
var ErrInvalidImport = errors.New("invalid import")

// CSV column headers. 日付, 内容 and 金額 are required; カテゴリ and メモ
// are optional.
const (
	ColumnDate        = "日付"
	ColumnDescription = "内容"
	ColumnAmount      = "金額"
	ColumnCategory    = "カテゴリ"
	ColumnMemo        = "メモ"
)

// Importer turns an uploaded CSV into stored transactions, one row at a
// time. Row failures are accumulated, never aborting the batch; each
// successful row commits independently.
type Importer struct {
	transactions TransactionCreator
	categories   CategoryReader
}

func NewImporter(transactions TransactionCreator, categories CategoryReader) *Importer {
	return &Importer{transactions: transactions, categories: categories}
}

// Import parses and persists the uploaded file. accountID, when non-nil,
// is attached to every imported transaction.
func (imp *Importer) Import(ctx context.Context, filename string, data []byte, accountID *int64) (*core.ImportResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, fmt.Errorf("%w: only CSV files are supported", ErrInvalidImport)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: file is not valid UTF-8", ErrInvalidImport)
	}

	// Strip a UTF-8 BOM; spreadsheet exports often carry one.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %v", ErrInvalidImport, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", ErrInvalidImport)
	}

	cols := headerIndex(records[0])
	var missing []string
	for _, required := range []string{ColumnDate, ColumnDescription, ColumnAmount} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", ErrInvalidImport, strings.Join(missing, ", "))
	}

	rows := records[1:]
	result := &core.ImportResult{Success: true, TotalRows: len(rows)}

	for i, row := range rows {
		// Human-facing row number: 1-based data index plus the header,
		// matching what a spreadsheet shows.
		rowNum := i + 2

		date, err := core.ParseDate(cell(row, cols[ColumnDate]))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid date format", rowNum))
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols[ColumnAmount])), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid amount format", rowNum))
			continue
		}

		// An explicit category name is looked up exactly; an unknown name
		// stays unresolved here rather than triggering keyword matching.
		var categoryID *int64
		if idx, ok := cols[ColumnCategory]; ok {
			if name := strings.TrimSpace(cell(row, idx)); name != "" {
				category, err := imp.categories.GetCategoryByName(ctx, name)
				switch {
				case err == nil:
					categoryID = &category.ID
				case !errors.Is(err, core.ErrNotFound):
					result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
					continue
				}
			}
		}

		memo := ""
		if idx, ok := cols[ColumnMemo]; ok {
			memo = strings.TrimSpace(cell(row, idx))
		}

		_, err = imp.transactions.Create(ctx, core.Transaction{
			Date:        date,
			Description: cell(row, cols[ColumnDescription]),
			Amount:      amount,
			Type:        core.DeriveType(amount),
			CategoryID:  categoryID,
			AccountID:   accountID,
			Memo:        memo,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		result.ImportedCount++
	}

	slog.InfoContext(ctx, "CSV import finished",
		"filename", filename,
		"imported", result.ImportedCount,
		"total_rows", result.TotalRows,
		"row_errors", len(result.Errors))

	return result, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Template describes the expected CSV layout with two sample rows.
func Template() map[string]any {
	return map[string]any{
		"template": map[string]any{
			"columns": []string{ColumnDate, ColumnDescription, ColumnAmount, ColumnCategory, ColumnMemo},
			"example_rows": []map[string]any{
				{
					ColumnDate:        "2024-01-15",
					ColumnDescription: "スーパーマーケット",
					ColumnAmount:      -3500,
					ColumnCategory:    "食費",
					ColumnMemo:        "週末の買い物",
				},
				{
					ColumnDate:        "2024-01-20",
					ColumnDescription: "給料",
					ColumnAmount:      250000,
					ColumnCategory:    "給料",
					ColumnMemo:        "",
				},
			},
		},
	}
}
