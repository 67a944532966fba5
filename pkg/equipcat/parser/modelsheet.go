package parser

import (
	"github.com/xuri/excelize/v2"
)

// ExtractModels reads the header row and the model rows of a sheet.
// Every row is stringified and padded to the populated width of the sheet.
// Rows whose cells are all empty are dropped.
func ExtractModels(f *excelize.File, sheetName string) (header []string, rows [][]string, err error) {
	r := newSheetReader(f, sheetName)
	raw, err := r.rows()
	if err != nil {
		return nil, nil, err
	}

	rows = [][]string{}
	width := PopulatedWidth(raw)
	if width == 0 {
		return []string{}, rows, nil
	}

	var headerRaw []string
	if len(raw) > 0 {
		headerRaw = raw[0]
	}
	header = r.stringifyRow(headerRaw, 0, width)

	for rowIdx := 1; rowIdx < len(raw); rowIdx++ {
		if !HasData(raw[rowIdx]) {
			continue
		}
		rows = append(rows, r.stringifyRow(raw[rowIdx], rowIdx, width))
	}

	return header, rows, nil
}

// HasData reports whether any raw cell of the row is non-empty.
// A numeric zero is data.
func HasData(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}

// stringifyRow converts a raw row into exactly width strings.
func (r *sheetReader) stringifyRow(row []string, rowIdx, width int) []string {
	out := make([]string, width)
	for colIdx := 0; colIdx < width && colIdx < len(row); colIdx++ {
		out[colIdx] = r.cellString(colIdx, rowIdx, row[colIdx])
	}
	return out
}
