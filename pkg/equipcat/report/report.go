package report

import (
	"sort"

	"github.com/dm329/equipcat/pkg/equipcat/models"
)

const (
	// CategorySentinel is the list header left in the category column.
	CategorySentinel = "TIPI"
	// BrandSentinel is the list header left in the brand column.
	BrandSentinel = "MARCHE"
	// DefaultTopBrands is how many brands the brand section lists.
	DefaultTopBrands = 15
)

// Count is a label with the number of model rows matching it.
type Count struct {
	Label string
	Count int
}

// MappingCount is a mapping entry with the number of model rows in its source category.
type MappingCount struct {
	MappingEntry
	Count int
}

// Report holds every section of the statistics report.
type Report struct {
	DistinctCategories int
	DistinctBrands     int
	TotalRows          int
	Categories         []Count
	Mapping            []MappingCount
	TopN               int
	TopBrands          []Count
}

// Compute builds the report for a catalog. It does not modify the catalog.
// topN <= 0 selects DefaultTopBrands.
func Compute(catalog *models.ExtractedCatalog, mapping Mapping, topN int) Report {
	if topN <= 0 {
		topN = DefaultTopBrands
	}

	rows := catalog.Models.Rows
	byCategory := make(map[string]int)
	byBrand := make(map[string]int)
	for _, row := range rows {
		byCategory[models.Category(row)]++
		byBrand[models.Brand(row)]++
	}

	categories := Distinct(catalog.Lists.Categories, CategorySentinel)
	brands := Distinct(catalog.Lists.Brands, BrandSentinel)

	r := Report{
		DistinctCategories: len(categories),
		DistinctBrands:     len(brands),
		TotalRows:          len(rows),
		TopN:               topN,
	}

	for _, c := range categories {
		r.Categories = append(r.Categories, Count{Label: c, Count: byCategory[c]})
	}
	for _, e := range mapping {
		r.Mapping = append(r.Mapping, MappingCount{MappingEntry: e, Count: byCategory[e.Source]})
	}

	if len(brands) > topN {
		brands = brands[:topN]
	}
	for _, b := range brands {
		r.TopBrands = append(r.TopBrands, Count{Label: b, Count: byBrand[b]})
	}

	return r
}

// Distinct returns the sorted set of values, without the excluded token.
func Distinct(values []string, exclude string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == exclude {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
