package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ImportConfig describes where each field lives in a spreadsheet or CSV file.
// Columns are spreadsheet letters ("A", "B", ...). CSV files use the same
// letters for their field positions.
type ImportConfig struct {
	FilePath string
	// IDColumn may be empty, in which case IDs are generated from the row number.
	IDColumn        string
	NorwegianColumn string
	EnglishColumn   string
	LevelColumn     string
	CategoryColumn  string
	// SheetName defaults to the first sheet of the workbook.
	SheetName string
	// StartRow is the 1-based row of the first word.
	StartRow int
}

// DefaultImportConfig returns the layout id, norwegian, english, level,
// category with a header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:        "A",
		NorwegianColumn: "B",
		EnglishColumn:   "C",
		LevelColumn:     "D",
		CategoryColumn:  "E",
		StartRow:        2,
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	// Skipped counts rows whose level is not one of the known tiers.
	Skipped int
	Errors  []string
	Words   []domain.VocabularyItem
}

type columnIndex struct {
	id, norwegian, english, level, category int
}

// ImportWords reads a word list from an xlsx or CSV file. Row-level problems
// are collected in the result; only failures to read the file are errors.
func ImportWords(cfg ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.StartRow < 1 {
		cfg.StartRow = 1
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		rows, err = readCSV(cfg.FilePath)
	case ".xlsx":
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, cfg.FilePath)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow || isBlank(row) {
			continue
		}
		result.TotalProcessed++

		raw := rawWord{
			ID:        cell(row, cols.id),
			Norwegian: cell(row, cols.norwegian),
			English:   cell(row, cols.english),
			Level:     cell(row, cols.level),
			Category:  cell(row, cols.category),
		}
		if cols.id < 0 {
			raw.ID = fmt.Sprintf("row-%d", rowNum)
		}

		item, ok := toItem(raw)
		if !ok {
			result.Skipped++
			continue
		}
		if err := item.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if first, dup := seen[item.ID]; dup {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: %v: %s (first seen in row %d)", rowNum, ErrDuplicateWord, item.ID, first))
			continue
		}
		seen[item.ID] = rowNum

		result.Words = append(result.Words, item)
		result.Imported++
	}

	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func resolveColumns(cfg ImportConfig) (columnIndex, error) {
	var idx columnIndex
	targets := []struct {
		name     string
		letter   string
		dst      *int
		optional bool
	}{
		{"id", cfg.IDColumn, &idx.id, true},
		{"norwegian", cfg.NorwegianColumn, &idx.norwegian, false},
		{"english", cfg.EnglishColumn, &idx.english, false},
		{"level", cfg.LevelColumn, &idx.level, false},
		{"category", cfg.CategoryColumn, &idx.category, true},
	}

	for _, t := range targets {
		if t.letter == "" {
			if !t.optional {
				return idx, fmt.Errorf("%s column is required", t.name)
			}
			*t.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(t.letter)
		if err != nil {
			return idx, fmt.Errorf("invalid %s column %q: %w", t.name, t.letter, err)
		}
		*t.dst = n - 1
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
