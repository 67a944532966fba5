package models

// Specs holds the optional technical columns of a model row.
type Specs struct {
	Volume       string `json:"volume,omitempty"`
	Pressione    string `json:"pressione,omitempty"`
	Temperatura  string `json:"temperatura,omitempty"`
	CategoriaPED string `json:"categoria_ped,omitempty"`
}

// IsZero reports whether every technical field is empty.
func (s Specs) IsZero() bool {
	return s == Specs{}
}

// CatalogEntry is a model row resolved against the category to form mapping.
type CatalogEntry struct {
	// TipoExcel is the category as written in the workbook.
	TipoExcel string `json:"tipo_excel"`
	// TipoApparecchiatura is the canonical form category.
	TipoApparecchiatura string `json:"tipo_apparecchiatura"`
	Marca               string `json:"marca"`
	Modello             string `json:"modello"`
	// Specs is nil when the row carries no technical data.
	Specs *Specs `json:"specs,omitempty"`
}
