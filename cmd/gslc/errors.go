package main

import "errors"

// Sentinel errors for command operations
var (
	ErrFileNotFormatted   = errors.New("file is not formatted")
	ErrFormattingErrors   = errors.New("some files had formatting errors")
	ErrUnknownTable       = errors.New("unknown reference table")
	ErrUnsupportedFile    = errors.New("unsupported input file type")
	ErrValidationWarnings = errors.New("shorthand has validation warnings")
)
