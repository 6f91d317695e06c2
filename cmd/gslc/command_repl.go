package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shibukawa/gslc/history"
	"github.com/shibukawa/gslc/pronounce"
	"github.com/shibukawa/gslc/translator"
	"golang.org/x/term"
)

const replHelp = `Enter shorthand to translate it. Commands:
  :tr        translate input (default)
  :pron      pronounce input on one line
  :steps     pronounce input one statement per line
  :history   show recent input
  :help      show this help
  :quit      leave the session`

// REPLCmd represents the repl command
type REPLCmd struct {
	NoHistory bool `help:"Do not record this session"`
}

// Run executes the repl command
func (cmd *REPLCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var store history.Store = history.NewMemory()

	if config.History.Enabled && !cmd.NoHistory {
		sqlite, err := history.NewSQLite(context.Background(), config.History.Path)
		if err != nil {
			return err
		}

		store = sqlite

		if ctx.Verbose {
			color.New(color.FgBlue).Fprintf(ctx.Stderr, "History: %s\n", config.History.Path)
		}
	}
	defer store.Close()

	s := &session{
		id:           history.NewSessionID(),
		mode:         history.ModeTranslate,
		store:        store,
		historyLimit: config.REPL.HistoryLimit,
		numbered:     config.Output.Numbered,
	}

	prompt := ""
	if isTerminal(ctx.Stdin) {
		prompt = config.REPL.Prompt
		if !ctx.Quiet {
			fmt.Fprintf(ctx.Stdout, "gslc v%s, :help for commands\n", version)
		}
	}

	return s.run(context.Background(), ctx.Stdin, ctx.Stdout, prompt)
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// session is one interactive loop
type session struct {
	id           string
	mode         history.Mode
	store        history.Store
	historyLimit int
	numbered     bool
}

func (s *session) run(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			if prompt != "" {
				fmt.Fprintln(out)
			}

			return scanner.Err()
		}

		output, quit, err := s.eval(ctx, scanner.Text())
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "Error: %v\n", err)
			continue
		}

		if output != "" {
			fmt.Fprintln(out, output)
		}

		if quit {
			return nil
		}
	}
}

// eval handles one input line
func (s *session) eval(ctx context.Context, line string) (output string, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}

	switch line {
	case ":quit", ":q", ":exit":
		return "", true, nil
	case ":help":
		return replHelp, false, nil
	case ":tr", ":translate":
		s.mode = history.ModeTranslate
		return "mode: translate", false, nil
	case ":pron", ":pronounce":
		s.mode = history.ModePronounce
		return "mode: pronounce", false, nil
	case ":steps":
		s.mode = history.ModeSteps
		return "mode: steps", false, nil
	case ":history":
		output, err := s.recent(ctx)
		return output, false, err
	}

	if strings.HasPrefix(line, ":") {
		return "", false, fmt.Errorf("unknown command %s (:help lists commands)", line)
	}

	output = s.render(line)

	_, err = s.store.Append(ctx, history.Entry{
		Session: s.id,
		Mode:    s.mode,
		Input:   line,
		Output:  output,
	})
	if err != nil {
		return output, false, fmt.Errorf("failed to record history: %w", err)
	}

	return output, false, nil
}

func (s *session) render(line string) string {
	switch s.mode {
	case history.ModePronounce:
		return pronounce.Pronounce(line, false)
	case history.ModeSteps:
		return pronounce.Pronounce(line, true)
	}

	sentences := translator.Translate(line)
	if s.numbered {
		for i, sentence := range sentences {
			sentences[i] = fmt.Sprintf("%d. %s", i+1, sentence)
		}
	}

	return strings.Join(sentences, "\n")
}

func (s *session) recent(ctx context.Context) (string, error) {
	entries, err := s.store.Recent(ctx, s.historyLimit)
	if err != nil {
		return "", err
	}

	if len(entries) == 0 {
		return "no history", nil
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s  [%s] %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Mode, e.Input)
	}

	return strings.Join(lines, "\n"), nil
}
