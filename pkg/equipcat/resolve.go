package equipcat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/dm329/equipcat/pkg/equipcat/report"
)

// Header columns read when resolving model rows into catalog entries.
const (
	ColumnTipo         = "TIPO"
	ColumnMarca        = "MARCA"
	ColumnModello      = "MODELLO"
	ColumnVolume       = "V(l)/FAD(l/min)"
	ColumnPressione    = "PS/Ptar(bar)"
	ColumnTemperatura  = "TS(°C)"
	ColumnCategoriaPED = "CAT_PED"
)

// SkippedRow records a model row that could not be resolved.
type SkippedRow struct {
	// Row is the 1-based position in the model rows.
	Row    int
	Reason string
}

// ResolveEntries maps model rows to catalog entries through the form mapping.
// Rows missing a category, brand or model, and rows whose category is not in
// the mapping, are skipped and reported.
func ResolveEntries(catalog *models.ExtractedCatalog, mapping report.Mapping) ([]models.CatalogEntry, []SkippedRow, error) {
	columns := make(map[string]int)
	for i, name := range catalog.Models.Header {
		name = strings.TrimSpace(name)
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	for _, required := range []string{ColumnTipo, ColumnMarca, ColumnModello} {
		if _, ok := columns[required]; !ok {
			return nil, nil, &MissingError{Kind: "column", Name: required}
		}
	}

	get := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		entries []models.CatalogEntry
		skipped []SkippedRow
	)
	for i, row := range catalog.Models.Rows {
		tipo, marca, modello := get(row, ColumnTipo), get(row, ColumnMarca), get(row, ColumnModello)
		if tipo == "" || marca == "" || modello == "" {
			skipped = append(skipped, SkippedRow{
				Row:    i + 1,
				Reason: fmt.Sprintf("missing field: TIPO=%q, MARCA=%q, MODELLO=%q", tipo, marca, modello),
			})
			continue
		}

		form, ok := mapping.Lookup(tipo)
		if !ok {
			skipped = append(skipped, SkippedRow{
				Row:    i + 1,
				Reason: fmt.Sprintf("unknown category %q (MARCA: %s, MODELLO: %s)", tipo, marca, modello),
			})
			continue
		}

		entry := models.CatalogEntry{
			TipoExcel:           tipo,
			TipoApparecchiatura: form,
			Marca:               marca,
			Modello:             modello,
		}
		specs := models.Specs{
			Volume:       get(row, ColumnVolume),
			Pressione:    get(row, ColumnPressione),
			Temperatura:  get(row, ColumnTemperatura),
			CategoriaPED: get(row, ColumnCategoriaPED),
		}
		if !specs.IsZero() {
			entry.Specs = &specs
		}
		entries = append(entries, entry)
	}

	return entries, skipped, nil
}

// CountByForm counts entries per form category, largest first, ties by name.
func CountByForm(entries []models.CatalogEntry) []report.Count {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.TipoApparecchiatura]++
	}
	out := make([]report.Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, report.Count{Label: label, Count: n})
	}
	sortCounts(out)
	return out
}

func sortCounts(counts []report.Count) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
}
