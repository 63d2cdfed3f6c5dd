// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldStyle  = "style"
	FieldFormat = "format"

	// Compile statistics fields.
	FieldElements    = "elements"
	FieldRequests    = "requests"
	FieldCellStyles  = "cell_styles"
	FieldInsertedLen = "inserted_len"
	FieldStartIndex  = "start_index"
	FieldTitle       = "title"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
