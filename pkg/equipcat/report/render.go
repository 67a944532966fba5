package report

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes the report as plain text.
func Render(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Tipologie uniche: %d\n", r.DistinctCategories)
	fmt.Fprintf(bw, "Marche uniche: %d\n", r.DistinctBrands)
	fmt.Fprintf(bw, "Totale righe modelli: %d\n", r.TotalRows)

	fmt.Fprintln(bw, "\n=== TIPOLOGIE ===")
	for _, c := range r.Categories {
		fmt.Fprintf(bw, "  - %s: %d modelli\n", c.Label, c.Count)
	}

	fmt.Fprintln(bw, "\n=== MAPPATURA TIPOLOGIE Excel → Form DM329 ===")
	for _, m := range r.Mapping {
		fmt.Fprintf(bw, "  \"%s\" → %s (%d modelli)\n", m.Source, m.Form, m.Count)
	}

	fmt.Fprintf(bw, "\n=== PRIME %d MARCHE (ordinate alfabeticamente) ===\n", r.TopN)
	for _, b := range r.TopBrands {
		fmt.Fprintf(bw, "  - %s: %d modelli\n", b.Label, b.Count)
	}

	return bw.Flush()
}
