package markdownparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/gslc/testhelper"
)

func TestParseSheet(t *testing.T) {
	input := testhelper.TrimIndent(t, `
		---
		author: "Ms. Rivera"
		level: 2
		---

		# Triangle Sheet

		## Warm-up

		~~~gsl
		P:A,B/S:AB
		~~~

		## Equilateral

		Build the triangle first.

		~~~gsl
		J:ABC/
		R:3;AB=ABC
		~~~

		~~~sql
		SELECT 1
		~~~
		`)

	doc, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "Triangle Sheet", doc.Title)
	assert.Equal(t, "Ms. Rivera", doc.Metadata["author"])

	assert.Equal(t, []Problem{
		{Name: "Warm-up", Source: "P:A,B/S:AB", Line: 11},
		{Name: "Equilateral", Source: "J:ABC/\nR:3;AB=ABC", Line: 19},
	}, doc.Problems)

	assert.Equal(t, []string{"P:A,B/S:AB", "J:ABC/\nR:3;AB=ABC"}, doc.Sources())
}

func TestParseBacktickFence(t *testing.T) {
	input := "# Sheet\n\n```gsl\nS:AB\n```\n"

	doc, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []Problem{{Name: "Problem 1", Source: "S:AB", Line: 4}}, doc.Problems)
}

func TestParseUnnamedProblems(t *testing.T) {
	input := testhelper.TrimIndent(t, `
		~~~gsl
		S:AB
		~~~

		~~~GSLC title="second"
		L:CD
		~~~
		`)

	doc, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "", doc.Title)
	assert.Equal(t, 2, len(doc.Problems))
	assert.Equal(t, "Problem 1", doc.Problems[0].Name)
	assert.Equal(t, "Problem 2", doc.Problems[1].Name)
	assert.Equal(t, "L:CD", doc.Problems[1].Source)
}

func TestParseTitleFromFrontMatter(t *testing.T) {
	input := "---\ntitle: Circles\n---\n\n~~~gsl\nC:O;5\n~~~\n"

	doc, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, "Circles", doc.Title)
	assert.Equal(t, 6, doc.Problems[0].Line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"unterminated front matter", "---\ntitle: x\n\n~~~gsl\nS:AB\n~~~\n", ErrInvalidFrontMatter},
		{"no shorthand block", "# Sheet\n\nNothing here.\n", ErrNoShorthandBlock},
		{"only other languages", "~~~go\nfunc main() {}\n~~~\n", ErrNoShorthandBlock},
		{"empty", "", ErrNoShorthandBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}
