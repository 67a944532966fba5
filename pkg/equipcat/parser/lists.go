package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractLists reads the category (column 1) and brand (column 2) lists.
// Values are stringified and trimmed; blank values are skipped.
// The two lists are filled independently, so they need not stay row-aligned.
func ExtractLists(f *excelize.File, sheetName string) (categories, brands []string, err error) {
	r := newSheetReader(f, sheetName)
	rows, err := r.rows()
	if err != nil {
		return nil, nil, err
	}

	categories = []string{}
	brands = []string{}
	for rowIdx, row := range rows {
		if v := r.trimmedCell(row, 0, rowIdx); v != "" {
			categories = append(categories, v)
		}
		if v := r.trimmedCell(row, 1, rowIdx); v != "" {
			brands = append(brands, v)
		}
	}

	return categories, brands, nil
}

func (r *sheetReader) trimmedCell(row []string, col, rowIdx int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(r.cellString(col, rowIdx, row[col]))
}
