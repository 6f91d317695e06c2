package formatter

import "errors"

// Sentinel errors
var (
	// ErrUnsupportedFormat is returned for an output format name that has no
	// writer.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrNoStatements is returned when shorthand holds no statement to format.
	ErrNoStatements = errors.New("no statements to format")
)
