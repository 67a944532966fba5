// Package parser provides excelize-backed readers for the model workbook.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the string form of date-formatted numeric cells.
const DateLayout = "2006-01-02 15:04:05"

// largeNumber is the magnitude from which numbers are rendered in exponent form.
const largeNumber = 1e21

// builtinDateFormats are the built-in number format IDs that render as dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// sheetReader reads raw cell values of one sheet and stringifies them.
type sheetReader struct {
	f          *excelize.File
	sheetName  string
	date1904   bool
	dateStyles map[int]bool
}

func newSheetReader(f *excelize.File, sheetName string) *sheetReader {
	r := &sheetReader{
		f:          f,
		sheetName:  sheetName,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// rows returns the raw values of every row up to the last populated one.
// Formulas come back as their cached value, or "" when none was saved.
func (r *sheetReader) rows() ([][]string, error) {
	return r.f.GetRows(r.sheetName, excelize.Options{RawCellValue: true})
}

// cellString stringifies the raw value at the 0-based (col, row) position.
func (r *sheetReader) cellString(col, row int, raw string) string {
	if raw == "" {
		return ""
	}
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return raw
	}
	cellType, err := r.f.GetCellType(r.sheetName, cellName)
	if err != nil {
		return raw
	}

	switch cellType {
	case excelize.CellTypeBool:
		return FormatBool(raw)
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.Format(DateLayout)
		}
		return raw
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return FormatNumber(raw, r.isDateCell(cellName), r.date1904)
	default:
		return raw
	}
}

// isDateCell reports whether the cell's number format renders a date.
func (r *sheetReader) isDateCell(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormat(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// FormatNumber renders a raw numeric cell value.
// Integers that fit in int64 are kept digit for digit. Other integral values
// have no fractional part and the rest use the shortest decimal form that
// round-trips, switching to exponent form from 1e21 up. Date-formatted values
// are rendered with DateLayout. Values that do not parse as numbers are
// returned unchanged.
func FormatNumber(raw string, isDate, date1904 bool) string {
	if !isDate {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(v, date1904); err == nil {
			return t.Format(DateLayout)
		}
	}
	if math.Abs(v) >= largeNumber {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatBool renders a raw boolean cell value the way Excel displays it.
func FormatBool(raw string) string {
	switch strings.ToUpper(raw) {
	case "1", "TRUE":
		return "TRUE"
	default:
		return "FALSE"
	}
}

// IsDateFormat reports whether a custom number format code renders a date or time.
func IsDateFormat(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, ch := range code {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(ch)
		}
	}

	stripped := strings.ToLower(b.String())
	if strings.Contains(stripped, "general") {
		return false
	}
	return strings.ContainsAny(stripped, "ymdhs")
}
