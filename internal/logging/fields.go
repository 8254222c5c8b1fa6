package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"

	FieldFocusLine = "focus_line"
	FieldPolicy    = "policy"
	FieldSegments  = "segments"
	FieldBytes     = "bytes"
	FieldWidth     = "width"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
