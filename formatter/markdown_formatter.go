package formatter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	shorthandBlockStartRe = regexp.MustCompile("^(\\s*)(`{3,}|~{3,})\\s*gslc?\\b.*$")
	codeBlockEndRe        = regexp.MustCompile("^(\\s*)(`{3,}|~{3,})\\s*$")
)

// MarkdownFormatter formats gsl code blocks within Markdown problem sheets
type MarkdownFormatter struct {
	shorthand *ShorthandFormatter
}

// NewMarkdownFormatter creates a new Markdown formatter
func NewMarkdownFormatter(shorthand *ShorthandFormatter) *MarkdownFormatter {
	if shorthand == nil {
		shorthand = NewShorthandFormatter()
	}

	return &MarkdownFormatter{
		shorthand: shorthand,
	}
}

// Format formats every gsl code block of a Markdown file and copies all
// other lines unchanged.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var result strings.Builder

	scanner := bufio.NewScanner(strings.NewReader(markdown))

	var (
		inBlock      bool
		blockContent strings.Builder
		blockIndent  string
		blockFence   string
	)

	for scanner.Scan() {
		line := scanner.Text()

		if !inBlock {
			if match := shorthandBlockStartRe.FindStringSubmatch(line); match != nil {
				inBlock = true
				blockIndent = match[1]
				blockFence = match[2]
				blockContent.Reset()
			}

			result.WriteString(line)
			result.WriteString("\n")

			continue
		}

		if match := codeBlockEndRe.FindStringSubmatch(line); match != nil && strings.HasPrefix(match[2], blockFence) {
			inBlock = false
			f.writeBlock(&result, blockContent.String(), blockIndent)
			result.WriteString(line)
			result.WriteString("\n")

			continue
		}

		// Accumulate shorthand (remove the block indentation)
		blockContent.WriteString(strings.TrimPrefix(line, blockIndent))
		blockContent.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	// An unterminated block is copied as is.
	if inBlock {
		result.WriteString(blockContent.String())
	}

	return strings.TrimRight(result.String(), "\n"), nil
}

func (f *MarkdownFormatter) writeBlock(result *strings.Builder, content, indent string) {
	formatted, err := f.shorthand.Format(content)
	if err != nil {
		// Empty blocks are kept as they are
		formatted = strings.TrimRight(content, "\n")
		if formatted == "" {
			return
		}
	}

	for _, line := range strings.Split(formatted, "\n") {
		if strings.TrimSpace(line) != "" {
			result.WriteString(indent)
			result.WriteString(line)
		}
		result.WriteString("\n")
	}
}

// FormatFromReader formats gsl code blocks from a reader and writes to a writer
func (f *MarkdownFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return fmt.Errorf("failed to format markdown: %w", err)
	}

	_, err = writer.Write([]byte(formatted))

	return err
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}
