package translator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTranslateCasework(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two cases", "(x;y),(z;w)", "Case 1: if x, then y; Case 2: if z, then w"},
		{"single case", "(AB=CD;ABC*IS)", "Case 1: if AB=CD, then ABC*IS"},
		{"malformed case keeps numbering", "(x;y),(bad),(z;w)", "Case 1: if x, then y; Case 3: if z, then w"},
		{"too many parts", "(a;b;c)", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TranslateCasework(tt.input))
		})
	}
}
