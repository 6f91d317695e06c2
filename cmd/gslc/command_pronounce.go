package main

import (
	"fmt"
	"strings"

	"github.com/shibukawa/gslc/pronounce"
)

// PronounceCmd represents the pronounce command
type PronounceCmd struct {
	Input []string `arg:"" optional:"" help:"Shorthand text, or file paths with --file"`
	File  bool     `short:"f" help:"Treat arguments as files ('-' for stdin)"`
	Steps bool     `short:"s" help:"Put every statement on its own numbered line"`
}

// Run executes the pronounce command
func (cmd *PronounceCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	input, err := collectSources(ctx, cmd.Input, cmd.File)
	if err != nil {
		return err
	}

	steps := cmd.Steps || config.Pronounce.Steps

	outputs := make([]string, 0, len(input.Sources))
	for _, src := range input.Sources {
		outputs = append(outputs, pronounce.Pronounce(src.Text, steps))
	}

	separator := "\n"
	if steps {
		separator = "\n\n"
	}

	fmt.Fprintln(ctx.Stdout, strings.Join(outputs, separator))

	return nil
}
