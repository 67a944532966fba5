package parser

import "github.com/xuri/excelize/v2"

// ListSheetNames returns all sheet names in workbook order.
func ListSheetNames(f *excelize.File) []string {
	names := f.GetSheetList()
	if names == nil {
		return []string{}
	}
	return names
}

// HasSheet reports whether the workbook contains a sheet with exactly this name.
func HasSheet(f *excelize.File, sheetName string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheetName {
			return true
		}
	}
	return false
}
