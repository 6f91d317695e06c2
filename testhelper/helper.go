package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	leadingSpaces = regexp.MustCompile(`^(\s+)`)
	leadingTabs   = regexp.MustCompile(`^(\t+)`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent removes the indentation of the first content line from every
// line of an indented raw string literal. The opening line break is dropped,
// and so is a trailing line that holds only indentation.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	lines = lines[1:]
	indent := leadingSpaces.FindString(lines[0])

	if last := lines[len(lines)-1]; strings.TrimSpace(last) == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines, "\n")
}
