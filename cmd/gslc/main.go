package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shibukawa/gslc"
)

const version = "0.2.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// newContext returns a context bound to the process streams
func newContext(config string, verbose, quiet bool) *Context {
	return &Context{
		Config:  config,
		Verbose: verbose,
		Quiet:   quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// CLI represents the command-line interface
var CLI struct {
	Config    string       `help:"Configuration file path" default:"gslc.yaml"`
	Verbose   bool         `help:"Enable verbose output" short:"v"`
	Quiet     bool         `help:"Suppress output" short:"q"`
	Translate TranslateCmd `cmd:"" default:"withargs" help:"Translate shorthand into English sentences"`
	Pronounce PronounceCmd `cmd:"" aliases:"pron" help:"Transliterate shorthand into its spoken form"`
	Validate  ValidateCmd  `cmd:"" help:"Check shorthand for structural mistakes"`
	Fmt       FmtCmd       `cmd:"" help:"Rewrite shorthand into its canonical layout"`
	Reference ReferenceCmd `cmd:"" aliases:"lang" help:"Print the shorthand symbol tables"`
	REPL      REPLCmd      `cmd:"" name:"repl" help:"Start an interactive session"`
	About     AboutCmd     `cmd:"" help:"Show about information"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Stdout, "gslc v%s\n", version)
	return nil
}

// loadConfig loads the configuration named by the global --config flag
func loadConfig(ctx *Context) (*gslc.Config, error) {
	config, err := gslc.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gslc"),
		kong.Description("Geometry Shorthand Language compiler"),
		kong.UsageOnError(),
	)

	err := ctx.Run(newContext(CLI.Config, CLI.Verbose, CLI.Quiet))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
