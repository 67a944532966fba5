// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/dm329/equipcat/pkg/equipcat/models"
)

// ToJSON serializes the catalog as UTF-8 JSON without escaping non-ASCII or HTML
// characters. The output ends with a newline.
func ToJSON(catalog *models.ExtractedCatalog, pretty bool) ([]byte, error) {
	return marshal(catalog, pretty)
}

// EntriesToJSON serializes resolved catalog entries.
func EntriesToJSON(entries []models.CatalogEntry, pretty bool) ([]byte, error) {
	if entries == nil {
		entries = []models.CatalogEntry{}
	}
	return marshal(entries, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
