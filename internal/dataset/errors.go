// Package dataset provides loading of tabular business records from CSV
// sources, with lenient per-field parsing and typed load errors.
package dataset

import "fmt"

// SourceError indicates the input source could not be opened or read.
type SourceError struct {
	Path  string
	Cause error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("data source error: %s: %v", e.Path, e.Cause)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// SchemaError indicates the source was readable but contained no recognized
// columns or no parseable rows.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s: %s", e.Path, e.Message)
}
