// Package validator lints geometry shorthand before translation.
//
// Translation itself never fails, so every finding here is a Warning value.
// Callers that want a hard failure use Check, which wraps
// ErrValidationFailed.
package validator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shibukawa/gslc/tokenizer"
)

// Warning codes
const (
	CodeUnbalanced     = "unbalanced"
	CodeUnknownPrefix  = "unknown-prefix"
	CodeInvalidNumber  = "invalid-number"
	CodeAngleRange     = "angle-range"
	CodeUnknownTheorem = "unknown-theorem"
	CodeUnknownCode    = "unknown-code"
	CodeInvalidUTF8    = "invalid-utf8"
)

// Warning is a single lint finding.
type Warning struct {
	Pos     tokenizer.Position
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", w.Pos.Line, w.Pos.Column, w.Code, w.Message)
}

// Validate returns the warnings for input ordered by position. A clean input
// yields no warnings.
func Validate(input string) []Warning {
	tokens := tokenizer.NewTokenizer(input, tokenizer.TokenizerOptions{SkipWhitespace: true}).AllTokens()

	var warnings []Warning

	for _, token := range tokens {
		if token.Type == tokenizer.INVALID {
			warnings = append(warnings, Warning{
				Pos:     token.Position,
				Code:    CodeInvalidUTF8,
				Message: fmt.Sprintf("byte %q is not valid UTF-8", token.Value),
			})
		}
	}

	warnings = append(warnings, checkDelimiters(tokens)...)

	for _, stmt := range statements(tokens) {
		warnings = append(warnings, checkStatement(stmt)...)
	}

	slices.SortStableFunc(warnings, func(a, b Warning) int {
		return cmp.Compare(a.Pos.Offset, b.Pos.Offset)
	})

	return warnings
}

// Check is Validate for callers that treat any warning as an error.
func Check(input string) error {
	warnings := Validate(input)
	if len(warnings) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d warning(s), first at %s", ErrValidationFailed, len(warnings), warnings[0])
}

// statements splits the token stream at separators and wrappers.
func statements(tokens []tokenizer.Token) [][]tokenizer.Token {
	var (
		result  [][]tokenizer.Token
		current []tokenizer.Token
	)

	for _, token := range tokens {
		switch token.Type {
		case tokenizer.SEPARATOR, tokenizer.WRAPPER, tokenizer.EOF:
			if len(current) > 0 {
				result = append(result, current)
			}
			current = nil
		default:
			current = append(current, token)
		}
	}

	return result
}
