package parser

// PopulatedWidth returns the number of columns from column A up to the last
// non-empty cell of any row. It is 0 when every cell is empty.
func PopulatedWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx >= width; colIdx-- {
			if row[colIdx] != "" {
				width = colIdx + 1
				break
			}
		}
	}
	return width
}
