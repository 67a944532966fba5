package equipcat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/tidwall/gjson"
)

// requiredKeys must be present at the top level of a catalog document.
var requiredKeys = []string{"liste", "modelli"}

// LoadCatalog reads an extracted catalog from a JSON file.
func LoadCatalog(path string) (*models.ExtractedCatalog, error) {
	if err := checkReadable(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes an extracted catalog document.
func ParseCatalog(data []byte) (*models.ExtractedCatalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON document", ErrInputMalformed)
	}
	for _, key := range requiredKeys {
		if !gjson.GetBytes(data, key).Exists() {
			return nil, &MissingError{Kind: "key", Name: key}
		}
	}

	var catalog models.ExtractedCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	return &catalog, nil
}
