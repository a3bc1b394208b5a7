// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig = "config"
	FieldTheme  = "theme"
	FieldFormat = "format"
	FieldWidth  = "width"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldDocuments   = "documents"
	FieldBlocks      = "blocks"
	FieldDiagnostics = "diagnostics"
	FieldErrored     = "errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Catalog and highlight fields.
	FieldRecord   = "record"
	FieldLanguage = "language"
	FieldCategory = "category"
	FieldSection  = "section"
	FieldBytes    = "bytes"
)
