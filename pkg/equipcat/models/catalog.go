// Package models defines data structures for equipment catalog extraction.
package models

// ExtractedCatalog is the normalized document produced from the model workbook.
type ExtractedCatalog struct {
	// SheetNames lists every sheet in workbook order.
	SheetNames []string `json:"schede"`
	// Lists holds the reference lists from the "Liste" sheet.
	Lists Lists `json:"liste"`
	// Models holds the header and rows of the "Modelli" sheet.
	Models ModelTable `json:"modelli"`
}

// Lists holds the category and brand reference lists.
type Lists struct {
	// Categories is column 1, trimmed, blanks skipped, duplicates kept.
	Categories []string `json:"tipologie"`
	// Brands is column 2, same rule as Categories.
	Brands []string `json:"marche"`
}

// ModelTable holds the stringified model rows.
type ModelTable struct {
	// Header is the first row of the sheet.
	Header []string `json:"header"`
	// Rows are the non-blank data rows. Column 0 is the category, column 1 the brand.
	Rows [][]string `json:"righe"`
}

// Category returns the category column of a model row, or "" if the row is too short.
func Category(row []string) string {
	if len(row) > 0 {
		return row[0]
	}
	return ""
}

// Brand returns the brand column of a model row, or "" if the row is too short.
func Brand(row []string) string {
	if len(row) > 1 {
		return row[1]
	}
	return ""
}
