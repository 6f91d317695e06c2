package validator

import "errors"

// ErrValidationFailed is returned by Check when the input produced at least
// one warning.
var ErrValidationFailed = errors.New("validation failed")
