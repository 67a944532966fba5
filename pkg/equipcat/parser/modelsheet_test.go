package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExtractModels(t *testing.T) {
	f := openFixture(t, []string{"Modelli"}, map[string][][]interface{}{
		"Modelli": {
			{"TIPO", "MARCA", "MODELLO", "PS/Ptar(bar)"},
			{"Compressore", "Atlas", "GA 30", 13},
			{nil, nil, nil, nil},
			{"Filtro", "Bosch"},
			{0},
			{nil, nil, 11.5, true},
			{nil, ""},
		},
	})

	header, rows, err := ExtractModels(f, "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}

	expectedHeader := []string{"TIPO", "MARCA", "MODELLO", "PS/Ptar(bar)"}
	if !reflect.DeepEqual(header, expectedHeader) {
		t.Errorf("Expected header %q, got %q", expectedHeader, header)
	}

	expectedRows := [][]string{
		{"Compressore", "Atlas", "GA 30", "13"},
		{"Filtro", "Bosch", "", ""},
		{"0", "", "", ""},
		{"", "", "11.5", "TRUE"},
	}
	if !reflect.DeepEqual(rows, expectedRows) {
		t.Errorf("Expected rows %q, got %q", expectedRows, rows)
	}

	for i, row := range rows {
		if len(row) != len(header) {
			t.Errorf("Row %d has %d cells, header has %d", i, len(row), len(header))
		}
	}
}

func TestExtractModelsWiderRowsPadHeader(t *testing.T) {
	f := openFixture(t, []string{"Modelli"}, map[string][][]interface{}{
		"Modelli": {
			{"TIPO", "MARCA"},
			{"Compressore", "Atlas", "extra"},
		},
	})

	header, rows, err := ExtractModels(f, "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}
	if !reflect.DeepEqual(header, []string{"TIPO", "MARCA", ""}) {
		t.Errorf("Expected padded header, got %q", header)
	}
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Errorf("Expected one row of 3 cells, got %q", rows)
	}
}

func TestExtractModelsFormulaCachedValue(t *testing.T) {
	f := openFixture(t, []string{"Modelli"}, map[string][][]interface{}{
		"Modelli": {
			{"TIPO", "MARCA"},
			{"Compressore", "Atlas"},
		},
	})
	// A formula that was never calculated has no cached value and reads as empty.
	if err := f.SetCellFormula("Modelli", "A3", "CONCATENATE(A2,B2)"); err != nil {
		t.Fatalf("Failed to set formula: %v", err)
	}

	_, rows, err := ExtractModels(f, "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected the uncalculated formula row to be dropped, got %q", rows)
	}
}

func TestExtractModelsEmptySheet(t *testing.T) {
	f := openFixture(t, []string{"Modelli"}, nil)

	header, rows, err := ExtractModels(f, "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}
	if header == nil || rows == nil {
		t.Error("Expected empty, non-nil header and rows")
	}
	if len(header) != 0 || len(rows) != 0 {
		t.Errorf("Expected no data, got %q and %q", header, rows)
	}
}

// newModelsFile returns an unsaved workbook with a "Modelli" sheet and a header row.
func newModelsFile(t *testing.T, header []interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	if err := f.SetSheetName("Sheet1", "Modelli"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	if err := f.SetSheetRow("Modelli", "A1", &header); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	return f
}

func setStyledFloat(t *testing.T, f *excelize.File, cell string, value float64, style *excelize.Style) {
	t.Helper()

	if err := f.SetCellFloat("Modelli", cell, value, -1, 64); err != nil {
		t.Fatalf("Failed to set %s: %v", cell, err)
	}
	styleID, err := f.NewStyle(style)
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	if err := f.SetCellStyle("Modelli", cell, cell, styleID); err != nil {
		t.Fatalf("Failed to style %s: %v", cell, err)
	}
}

func TestExtractModelsDateCells(t *testing.T) {
	f := newModelsFile(t, []interface{}{"TIME", "BUILTIN", "CUSTOM", "NUMBER"})

	if err := f.SetCellValue("Modelli", "A2", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Failed to set A2: %v", err)
	}
	setStyledFloat(t, f, "B2", 45292, &excelize.Style{NumFmt: 14})
	dateCode := "dd/mm/yyyy"
	setStyledFloat(t, f, "C2", 45292.5, &excelize.Style{CustomNumFmt: &dateCode})
	numberCode := "#,##0.00"
	setStyledFloat(t, f, "D2", 45292, &excelize.Style{CustomNumFmt: &numberCode})

	_, rows, err := ExtractModels(saveAndReopen(t, f), "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}

	expected := [][]string{
		{"2024-03-05 10:30:00", "2024-01-01 00:00:00", "2024-01-01 12:00:00", "45292"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected rows %q, got %q", expected, rows)
	}
}

func TestExtractModelsDate1904(t *testing.T) {
	f := newModelsFile(t, []interface{}{"FROM", "TO"})

	date1904 := true
	if err := f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}); err != nil {
		t.Fatalf("Failed to set workbook props: %v", err)
	}
	setStyledFloat(t, f, "A2", 0, &excelize.Style{NumFmt: 14})
	setStyledFloat(t, f, "B2", 1, &excelize.Style{NumFmt: 14})

	_, rows, err := ExtractModels(saveAndReopen(t, f), "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}

	expected := [][]string{{"1904-01-01 00:00:00", "1904-01-02 00:00:00"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected rows %q, got %q", expected, rows)
	}
}

func TestExtractModelsFalseIsData(t *testing.T) {
	f := openFixture(t, []string{"Modelli"}, map[string][][]interface{}{
		"Modelli": {
			{"TIPO", "ATTIVO"},
			{nil, false},
			{"Filtro", true},
		},
	})

	_, rows, err := ExtractModels(f, "Modelli")
	if err != nil {
		t.Fatalf("ExtractModels failed: %v", err)
	}

	expected := [][]string{{"", "FALSE"}, {"Filtro", "TRUE"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected rows %q, got %q", expected, rows)
	}
}
