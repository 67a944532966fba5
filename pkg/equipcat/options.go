// Package equipcat extracts the equipment model catalog from a workbook
// and loads it back from its JSON form.
package equipcat

const (
	// DefaultWorkbookPath is where the model workbook is read from when no path is given.
	DefaultWorkbookPath = "DOCUMENTAZIONE/Lista Modelli.xlsx"
	// DefaultCatalogPath is where the extracted catalog is read from when no path is given.
	DefaultCatalogPath = "equipment_analysis.json"
	// DefaultListsSheet holds the category and brand reference lists.
	DefaultListsSheet = "Liste"
	// DefaultModelsSheet holds one header row followed by model rows.
	DefaultModelsSheet = "Modelli"
)

// Options configures extraction behavior.
type Options struct {
	// ListsSheet is the name of the reference list sheet.
	ListsSheet string
	// ModelsSheet is the name of the model sheet.
	ModelsSheet string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		ListsSheet:  DefaultListsSheet,
		ModelsSheet: DefaultModelsSheet,
	}
}

func (o Options) listsSheet() string {
	if o.ListsSheet == "" {
		return DefaultListsSheet
	}
	return o.ListsSheet
}

func (o Options) modelsSheet() string {
	if o.ModelsSheet == "" {
		return DefaultModelsSheet
	}
	return o.ModelsSheet
}
