package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shibukawa/gslc/symbols"
)

// referenceTables lists the printable tables in display order
var referenceTables = []struct {
	name  string
	title string
	print func(w io.Writer)
}{
	{"properties", "Properties (OBJ*CODE)", func(w io.Writer) { printEntries(w, symbols.Properties()) }},
	{"relationships", "Relationships (OBJ;OBJ*CODE)", func(w io.Writer) { printEntries(w, symbols.Relationships()) }},
	{"constructions", "Derived constructions (CODE:OBJ)", func(w io.Writer) { printEntries(w, symbols.DerivedConstructions()) }},
	{"constants", "Constants", func(w io.Writer) { printEntries(w, symbols.Constants()) }},
	{"theorems", "Theorems", printTheorems},
}

// ReferenceCmd represents the reference command
type ReferenceCmd struct {
	Table string `arg:"" optional:"" help:"Table to print: properties, relationships, constructions, constants or theorems (default: all)"`
}

// Run executes the reference command
func (cmd *ReferenceCmd) Run(ctx *Context) error {
	printed := false
	title := color.New(color.Bold)

	for _, table := range referenceTables {
		if cmd.Table != "" && cmd.Table != table.name {
			continue
		}

		if printed {
			fmt.Fprintln(ctx.Stdout)
		}

		title.Fprintln(ctx.Stdout, table.title)

		w := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
		table.print(w)
		w.Flush()

		printed = true
	}

	if !printed {
		return fmt.Errorf("%w: %s", ErrUnknownTable, cmd.Table)
	}

	return nil
}

func printEntries(w io.Writer, entries []symbols.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\t%s\n", e.Code, e.Meaning)
	}
}

func printTheorems(w io.Writer) {
	for _, th := range symbols.Theorems() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", th.Code, th.Name, th.Description)
	}
}
