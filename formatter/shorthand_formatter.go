package formatter

import (
	"strings"

	"github.com/shibukawa/gslc/translator"
)

const wrapper = `\\`

// ShorthandFormatter rewrites shorthand into its canonical layout: trimmed
// statements joined by single separators, keeping the outer wrapper when the
// source had one. Statement bodies are never changed.
type ShorthandFormatter struct {
	// OnePerLine puts every statement on its own line.
	OnePerLine bool
}

// NewShorthandFormatter creates a new shorthand formatter
func NewShorthandFormatter() *ShorthandFormatter {
	return &ShorthandFormatter{}
}

// Format returns the canonical form of src
func (f *ShorthandFormatter) Format(src string) (string, error) {
	statements := translator.Split(src)
	if len(statements) == 0 {
		return "", ErrNoStatements
	}

	separator := "/"
	if f.OnePerLine {
		separator = "/\n"
	}

	formatted := strings.Join(statements, separator)

	trimmed := strings.TrimSpace(src)
	if len(trimmed) >= 2*len(wrapper) && strings.HasPrefix(trimmed, wrapper) && strings.HasSuffix(trimmed, wrapper) {
		formatted = wrapper + formatted + wrapper
	}

	return formatted, nil
}
