package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shibukawa/gslc"
	"github.com/shibukawa/gslc/formatter"
	"github.com/shibukawa/gslc/markdownparser"
)

const stdinName = "-"

// source is one shorthand document to work on
type source struct {
	Name   string // problem heading, empty for plain input
	Origin string // file name or "<arg N>" for messages
	Line   int    // line of the first shorthand line within Origin
	Text   string
}

// sheet is everything read for one command invocation
type sheet struct {
	Title   string
	Sources []source
}

// collectSources reads the inputs of a command. Without fromFiles every
// argument is shorthand text; with it every argument is a file path, where
// Markdown files contribute one source per gsl code block.
func collectSources(ctx *Context, args []string, fromFiles bool) (*sheet, error) {
	if len(args) == 0 {
		return nil, gslc.ErrNoInput
	}

	result := &sheet{}

	if !fromFiles {
		for i, arg := range args {
			result.Sources = append(result.Sources, source{
				Origin: fmt.Sprintf("<arg %d>", i+1),
				Line:   1,
				Text:   arg,
			})
		}

		return result, nil
	}

	for _, path := range args {
		if err := readFile(ctx, path, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func readFile(ctx *Context, path string, result *sheet) error {
	var (
		reader io.Reader
		name   = path
	)

	if path == stdinName {
		reader = ctx.Stdin
		name = "<stdin>"
	} else {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %w", path, err)
		}
		defer file.Close()

		reader = file
	}

	if formatter.IsMarkdownFile(path) {
		document, err := markdownparser.Parse(reader)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if result.Title == "" {
			result.Title = document.Title
		}

		for _, problem := range document.Problems {
			result.Sources = append(result.Sources, source{
				Name:   problem.Name,
				Origin: name,
				Line:   problem.Line,
				Text:   problem.Source,
			})
		}

		return nil
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result.Sources = append(result.Sources, source{
		Origin: filepath.Base(name),
		Line:   1,
		Text:   string(content),
	})

	return nil
}

// texts returns the shorthand of every source in order
func (s *sheet) texts() []string {
	texts := make([]string, len(s.Sources))
	for i, src := range s.Sources {
		texts[i] = src.Text
	}

	return texts
}
