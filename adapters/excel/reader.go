package excel

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is used when the caller does not name one
const defaultSheet = "Sheet1"

// ColumnSamples holds the numeric observations read from one column
type ColumnSamples struct {
	Name    string
	Values  []float64
	Skipped int // data cells that failed numeric parsing
}

// Reader loads numeric sample columns from an Excel workbook for batch
// analysis. Each column is treated as one dataset: a header row naming the
// dataset followed by numeric observations.
type Reader struct {
	filePath string
	sheet    string
}

// NewReader creates a workbook reader for the given file
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath, sheet: defaultSheet}
}

// WithSheet selects a sheet other than Sheet1
func (r *Reader) WithSheet(sheet string) *Reader {
	r.sheet = sheet
	return r
}

// ReadColumns reads all columns from the sheet. When columns is non-empty,
// only the named columns are returned (error if any is missing).
func (r *Reader) ReadColumns(columns ...string) ([]ColumnSamples, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s must have a header row and at least one data row", r.sheet)
	}

	header := rows[0]
	all := make([]ColumnSamples, len(header))
	for i, name := range header {
		all[i].Name = strings.TrimSpace(name)
	}

	for _, row := range rows[1:] {
		for i := range all {
			if i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				all[i].Skipped++
				continue
			}
			all[i].Values = append(all[i].Values, v)
		}
	}

	for _, col := range all {
		if col.Skipped > 0 {
			log.Printf("[Excel] Column %q: skipped %d non-numeric cells", col.Name, col.Skipped)
		}
	}

	if len(columns) == 0 {
		return all, nil
	}
	return selectColumns(all, columns)
}

func selectColumns(all []ColumnSamples, names []string) ([]ColumnSamples, error) {
	byName := make(map[string]ColumnSamples, len(all))
	for _, col := range all {
		byName[col.Name] = col
	}

	selected := make([]ColumnSamples, 0, len(names))
	for _, name := range names {
		col, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("column %q not found in workbook", name)
		}
		selected = append(selected, col)
	}
	return selected, nil
}
