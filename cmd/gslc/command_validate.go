package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/gslc/validator"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Input  []string `arg:"" optional:"" help:"Shorthand text, or file paths with --file"`
	File   bool     `short:"f" help:"Treat arguments as files (.gsl shorthand or .md problem sheets, '-' for stdin)"`
	Strict bool     `help:"Fail when any warning is found"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	input, err := collectSources(ctx, cmd.Input, cmd.File)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Stderr, "Validating %d problem(s)\n", len(input.Sources))
	}

	var count int

	for _, src := range input.Sources {
		warnings := lint(src)
		count += len(warnings)

		for _, w := range warnings {
			fmt.Fprintln(ctx.Stdout, w)
		}
	}

	if count > 0 {
		if cmd.Strict || config.Validation.Strict {
			return fmt.Errorf("%w: %d warning(s)", ErrValidationWarnings, count)
		}

		if !ctx.Quiet {
			color.New(color.FgYellow).Fprintf(ctx.Stderr, "%d warning(s)\n", count)
		}

		return nil
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintln(ctx.Stderr, "Validation completed successfully")
	}

	return nil
}

// lint validates one source and renders its warnings with file positions
func lint(src source) []string {
	warnings := validator.Validate(src.Text)
	if len(warnings) == 0 {
		return nil
	}

	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = fmt.Sprintf("%s:%d:%d: %s: %s", src.Origin, src.Line+w.Pos.Line-1, w.Pos.Column, w.Code, w.Message)
	}

	return lines
}

// reportWarnings prints warnings to stderr unless quiet
func reportWarnings(ctx *Context, warnings []string) {
	if ctx.Quiet {
		return
	}

	warn := color.New(color.FgYellow)
	for _, w := range warnings {
		warn.Fprintf(ctx.Stderr, "warning: %s\n", w)
	}
}
