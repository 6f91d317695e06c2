package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/gslc/formatter"
	"github.com/shibukawa/gslc/pronounce"
	"github.com/shibukawa/gslc/translator"
)

// TranslateCmd represents the translate command
type TranslateCmd struct {
	Input      []string `arg:"" optional:"" help:"Shorthand text, or file paths with --file"`
	File       bool     `short:"f" help:"Treat arguments as files (.gsl shorthand or .md problem sheets, '-' for stdin)"`
	Format     string   `help:"Output format: text, markdown, html, json, yaml, xml, latex (default: from config)"`
	Output     string   `short:"o" help:"Write output to a file instead of stdout" type:"path"`
	Parallel   int      `help:"Number of parallel workers (0: from config)"`
	NoValidate bool     `help:"Skip validation before translation"`
	Pronounce  bool     `short:"p" help:"Add the pronunciation of every problem"`
	Plain      bool     `help:"Do not number sentences in text output"`
}

// Run executes the translate command
func (cmd *TranslateCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	formatName := cmd.Format
	if formatName == "" {
		formatName = config.Output.Format
	}

	format, err := formatter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	input, err := collectSources(ctx, cmd.Input, cmd.File)
	if err != nil {
		return err
	}

	parallel := cmd.Parallel
	if parallel <= 0 {
		parallel = config.Batch.Parallel
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Stderr, "Translating %d problem(s) as %s\n", len(input.Sources), format)
	}

	translations, err := translator.TranslateBatch(context.Background(), input.texts(), parallel)
	if err != nil {
		return fmt.Errorf("failed to translate: %w", err)
	}

	result := formatter.Result{Title: input.Title}
	validate := config.Validation.Enabled && !cmd.NoValidate

	var warningCount int

	for i, src := range input.Sources {
		problem := formatter.Problem{
			Name:      src.Name,
			Source:    src.Text,
			Sentences: translations[i],
		}

		if cmd.Pronounce {
			problem.Pronunciation = pronounce.Pronounce(src.Text, config.Pronounce.Steps)
		}

		if validate {
			problem.Warnings = lint(src)
			warningCount += len(problem.Warnings)
			reportWarnings(ctx, problem.Warnings)
		}

		result.Problems = append(result.Problems, problem)
	}

	if config.Validation.Strict && warningCount > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrValidationWarnings, warningCount)
	}

	opts := formatter.Options{Numbered: config.Output.Numbered && !cmd.Plain}

	if cmd.Output == "" {
		return formatter.Write(ctx.Stdout, result, format, opts)
	}

	if err := writeFile(cmd.Output, func(w io.Writer) error {
		return formatter.Write(w, result, format, opts)
	}); err != nil {
		return err
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Stdout, "Translation written to: %s\n", cmd.Output)
	}

	return nil
}

// writeFile creates path and hands it to write
func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return file.Close()
}
