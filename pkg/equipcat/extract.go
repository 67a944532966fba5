package equipcat

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/dm329/equipcat/pkg/equipcat/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the model workbook at path and builds the catalog.
// It either returns a complete catalog or an error; there is no partial result.
func Extract(path string, opts Options) (*models.ExtractedCatalog, error) {
	if err := checkReadable(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputMalformed, path, err)
	}
	defer f.Close()

	sheetNames := parser.ListSheetNames(f)
	slog.Debug("workbook opened", "path", path, "sheets", len(sheetNames))

	listsSheet, modelsSheet := opts.listsSheet(), opts.modelsSheet()
	for _, name := range []string{listsSheet, modelsSheet} {
		if !parser.HasSheet(f, name) {
			return nil, &MissingError{Kind: "sheet", Name: name}
		}
	}

	categories, brands, err := parser.ExtractLists(f, listsSheet)
	if err != nil {
		return nil, NewExtractionError(listsSheet, "lists", err)
	}
	slog.Debug("lists extracted", "sheet", listsSheet, "categories", len(categories), "brands", len(brands))

	header, rows, err := parser.ExtractModels(f, modelsSheet)
	if err != nil {
		return nil, NewExtractionError(modelsSheet, "models", err)
	}
	slog.Debug("models extracted", "sheet", modelsSheet, "columns", len(header), "rows", len(rows))

	return &models.ExtractedCatalog{
		SheetNames: sheetNames,
		Lists: models.Lists{
			Categories: categories,
			Brands:     brands,
		},
		Models: models.ModelTable{
			Header: header,
			Rows:   rows,
		},
	}, nil
}

// checkReadable maps a missing or unreadable input file to ErrInputNotFound.
func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}
