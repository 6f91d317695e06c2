package history

import "errors"

// Sentinel errors
var (
	// ErrUnsupportedSchemaVersion is returned when a history database was
	// written by an incompatible version.
	ErrUnsupportedSchemaVersion = errors.New("unsupported history schema version")
	// ErrEmptyInput is returned when appending an entry without input.
	ErrEmptyInput = errors.New("history entry has no input")
)
