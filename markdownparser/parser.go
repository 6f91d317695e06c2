// Package markdownparser reads geometry problem sheets written in Markdown.
//
// A sheet may start with YAML front matter. The first level-1 heading is the
// sheet title, and every fenced code block tagged gsl holds the shorthand of
// one problem, named after the closest heading above it.
package markdownparser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	ErrNoShorthandBlock   = errors.New("no gsl code block found")
)

// shorthandLanguages are the fenced code block info strings that mark a
// problem.
var shorthandLanguages = []string{"gsl", "gslc"}

// Document is a parsed problem sheet
type Document struct {
	Title    string
	Metadata map[string]any
	Problems []Problem
}

// Problem is one shorthand block of a sheet
type Problem struct {
	Name   string
	Source string
	Line   int // 1-based line of the first shorthand line in the file
}

// Parse parses a markdown problem sheet
func Parse(reader io.Reader) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	source := []byte(body)
	root := md.Parser().Parse(text.NewReader(source))

	document := &Document{
		Metadata: frontMatter,
	}

	// Offsets inside body are shifted by the stripped front matter.
	bodyStart := len(content) - len(body)

	var heading string

	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := extractTextFromHeadingNode(node, source)
			if node.Level == 1 && document.Title == "" {
				document.Title = headingText
			} else {
				heading = headingText
			}

			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if !isShorthandBlock(node, source) {
				return ast.WalkSkipChildren, nil
			}

			name := heading
			if name == "" {
				name = fmt.Sprintf("Problem %d", len(document.Problems)+1)
			}

			line := 0
			if node.Lines().Len() > 0 {
				line = strings.Count(string(content[:bodyStart+node.Lines().At(0).Start]), "\n") + 1
			}

			document.Problems = append(document.Problems, Problem{
				Name:   name,
				Source: extractCodeBlockContent(node, source),
				Line:   line,
			})

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if document.Title == "" {
		if title, ok := frontMatter["title"].(string); ok {
			document.Title = title
		}
	}

	if len(document.Problems) == 0 {
		return nil, ErrNoShorthandBlock
	}

	return document, nil
}

// Sources returns the shorthand of every problem in sheet order.
func (d *Document) Sources() []string {
	sources := make([]string, len(d.Problems))
	for i, p := range d.Problems {
		sources[i] = p.Source
	}
	return sources
}

func extractTextFromHeadingNode(heading ast.Node, content []byte) string {
	var result strings.Builder

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			result.Write(content[segment.Start:segment.Stop])
		case *ast.String:
			result.Write(node.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

func isShorthandBlock(codeBlock *ast.FencedCodeBlock, content []byte) bool {
	if codeBlock.Info == nil {
		return false
	}

	segment := codeBlock.Info.Segment
	info := strings.Fields(strings.ToLower(string(content[segment.Start:segment.Stop])))
	if len(info) == 0 {
		return false
	}

	for _, lang := range shorthandLanguages {
		if info[0] == lang {
			return true
		}
	}

	return false
}

func extractCodeBlockContent(codeBlock ast.Node, content []byte) string {
	var result strings.Builder

	lines := codeBlock.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		result.Write(content[line.Start:line.Stop])
	}

	return strings.TrimRight(result.String(), "\n")
}
