package gslc

import "errors"

// Common errors used throughout the gslc package
var (
	// ErrNoInput is returned when a command receives neither arguments nor files.
	ErrNoInput = errors.New("no shorthand input given")
)
