// Package report computes and renders catalog statistics.
package report

// MappingEntry maps a workbook category label to its form category.
type MappingEntry struct {
	Source string
	Form   string
}

// Mapping is an ordered category to form table. Order is the report order.
type Mapping []MappingEntry

// DefaultMapping returns the workbook category to DM329 form category table.
func DefaultMapping() Mapping {
	return Mapping{
		{Source: "Serbatoio aria verticale", Form: "Serbatoi"},
		{Source: "Serbatoio aria orizzontale", Form: "Serbatoi"},
		{Source: "Serbatoio disoleatore", Form: "Disoleatori"},
		{Source: "Compressore", Form: "Compressori"},
		{Source: "Compressore con essiccatore integrato", Form: "Compressori"},
		{Source: "Compressore alta pressione - Booster", Form: "Compressori"},
		{Source: "Essiccatore frigorifero", Form: "Essiccatori"},
		{Source: "Scambiatore di calore", Form: "Scambiatori"},
		{Source: "Filtro", Form: "Filtri"},
		{Source: "Separatore di condense", Form: "Separatori"},
		{Source: "Valvola di sicurezza", Form: "Valvole di sicurezza"},
	}
}

// Lookup returns the form category for a source label.
func (m Mapping) Lookup(source string) (string, bool) {
	for _, e := range m {
		if e.Source == source {
			return e.Form, true
		}
	}
	return "", false
}
