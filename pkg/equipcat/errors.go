package equipcat

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input file does not exist or cannot be read.
var ErrInputNotFound = errors.New("input not found")

// ErrInputMalformed indicates the input is not a valid workbook or JSON document.
var ErrInputMalformed = errors.New("input malformed")

// ErrSchemaViolation indicates a required sheet or key is absent.
var ErrSchemaViolation = errors.New("schema violation")

// ExtractionError represents an error while reading one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "lists", "models"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// MissingError reports a required sheet, JSON key or header column that is not present.
type MissingError struct {
	Kind string // "sheet", "key", "column"
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required %s %q not found", e.Kind, e.Name)
}

// Unwrap makes MissingError match ErrSchemaViolation.
func (e *MissingError) Unwrap() error {
	return ErrSchemaViolation
}
