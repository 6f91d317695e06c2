package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/shibukawa/gslc/formatter"
)

// FmtCmd represents the fmt command
type FmtCmd struct {
	Input      string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Output     string `short:"o" help:"Output file (default: stdout)"`
	Write      bool   `short:"w" help:"Write result to input file instead of stdout"`
	Check      bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
	Diff       bool   `short:"d" help:"Show diff instead of rewriting files"`
	OnePerLine bool   `short:"l" help:"Put every statement on its own line"`
}

// Run executes the fmt command
func (cmd *FmtCmd) Run(ctx *Context) error {
	shorthand := formatter.NewShorthandFormatter()
	shorthand.OnePerLine = cmd.OnePerLine

	if cmd.Input == "" {
		return cmd.formatFromReader(ctx, shorthand, ctx.Stdin, ctx.Stdout, "<stdin>")
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return cmd.formatDirectory(ctx, shorthand, cmd.Input)
	}

	return cmd.formatFile(ctx, shorthand, cmd.Input)
}

// formatFromReader formats shorthand from a reader and writes to a writer
func (cmd *FmtCmd) formatFromReader(ctx *Context, shorthand *formatter.ShorthandFormatter, reader io.Reader, writer io.Writer, filename string) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var formatted string

	if formatter.IsMarkdownFile(filename) {
		formatted, err = formatter.NewMarkdownFormatter(shorthand).Format(string(input))
	} else {
		formatted, err = shorthand.Format(string(input))
	}

	if err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	formatted += "\n"

	if cmd.Check {
		if strings.TrimSpace(string(input)) != strings.TrimSpace(formatted) {
			fmt.Fprintf(ctx.Stderr, "%s is not formatted\n", filename)
			return ErrFileNotFormatted
		}

		return nil
	}

	if cmd.Diff {
		return showDiff(ctx.Stdout, string(input), formatted, filename)
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

// formatFile formats a single file
func (cmd *FmtCmd) formatFile(ctx *Context, shorthand *formatter.ShorthandFormatter, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	switch {
	case cmd.Write:
		var b strings.Builder
		if err := cmd.formatFromReader(ctx, shorthand, strings.NewReader(string(content)), &b, filename); err != nil {
			return err
		}

		if cmd.Check || cmd.Diff || b.String() == string(content) {
			return nil
		}

		return writeFile(filename, func(w io.Writer) error {
			_, err := io.WriteString(w, b.String())
			return err
		})
	case cmd.Output != "":
		return writeFile(cmd.Output, func(w io.Writer) error {
			return cmd.formatFromReader(ctx, shorthand, strings.NewReader(string(content)), w, filename)
		})
	default:
		return cmd.formatFromReader(ctx, shorthand, strings.NewReader(string(content)), ctx.Stdout, filename)
	}
}

// formatDirectory formats all shorthand files in a directory recursively
func (cmd *FmtCmd) formatDirectory(ctx *Context, shorthand *formatter.ShorthandFormatter, dirPath string) error {
	var hasErrors bool

	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !isShorthandFile(path) {
			return nil
		}

		if err := cmd.formatFile(ctx, shorthand, path); err != nil {
			color.New(color.FgRed).Fprintf(ctx.Stderr, "Error formatting %s: %v\n", path, err)

			hasErrors = true

			return nil
		}

		if cmd.Write && !cmd.Check && !cmd.Diff && !ctx.Quiet {
			fmt.Fprintf(ctx.Stdout, "Formatted: %s\n", path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	if hasErrors {
		return ErrFormattingErrors
	}

	return nil
}

// isShorthandFile checks if a file holds shorthand or a problem sheet
func isShorthandFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".gsl") || formatter.IsMarkdownFile(filename)
}

// showDiff prints a unified diff between original and formatted content
func showDiff(w io.Writer, original, formatted, filename string) error {
	if original == formatted {
		return nil
	}

	edits := myers.ComputeEdits(span.URIFromPath(filename), original, formatted)
	diff := gotextdiff.ToUnified(filename+" (original)", filename+" (formatted)", original, edits)

	_, err := fmt.Fprint(w, diff)

	return err
}

// Help returns help text for the fmt command
func (cmd *FmtCmd) Help() string {
	return `Rewrite shorthand into its canonical layout.

Statements are trimmed and joined by single separators; statement bodies are
never changed. In Markdown problem sheets only gsl code blocks are rewritten.

Examples:
  # Format a single file and print to stdout
  gslc fmt problem.gsl

  # Format every sheet in a directory in place
  gslc fmt -w ./problems/

  # Check formatting in CI
  gslc fmt -c ./problems/`
}
