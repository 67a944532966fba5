package report

import (
	"fmt"
	"io"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/montanaflynn/stats"
)

// Summary describes how model rows spread across the members of a list.
type Summary struct {
	Name   string
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Distribution summarizes models per distinct category and per distinct brand.
func Distribution(catalog *models.ExtractedCatalog) ([]Summary, error) {
	byCategory := make(map[string]int)
	byBrand := make(map[string]int)
	for _, row := range catalog.Models.Rows {
		byCategory[models.Category(row)]++
		byBrand[models.Brand(row)]++
	}

	var out []Summary
	for _, g := range []struct {
		name    string
		members []string
		counts  map[string]int
	}{
		{"tipologia", Distinct(catalog.Lists.Categories, CategorySentinel), byCategory},
		{"marca", Distinct(catalog.Lists.Brands, BrandSentinel), byBrand},
	} {
		data := make(stats.Float64Data, 0, len(g.members))
		for _, m := range g.members {
			data = append(data, float64(g.counts[m]))
		}
		s, err := summarize(g.name, data)
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", g.name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func summarize(name string, data stats.Float64Data) (Summary, error) {
	s := Summary{Name: name, N: data.Len()}
	if data.Len() == 0 {
		return s, nil
	}

	var err error
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	s.StdDev, err = data.StandardDeviation()
	return s, err
}

// RenderDistribution writes the distribution section.
func RenderDistribution(w io.Writer, summaries []Summary) error {
	if _, err := fmt.Fprintln(w, "\n=== DISTRIBUZIONE MODELLI ==="); err != nil {
		return err
	}
	for _, s := range summaries {
		var err error
		if s.N == 0 {
			_, err = fmt.Fprintf(w, "  per %s: nessun dato\n", s.Name)
		} else {
			_, err = fmt.Fprintf(w, "  per %s (%d): min %.0f, max %.0f, media %.2f, mediana %.1f, dev. std %.2f\n",
				s.Name, s.N, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
