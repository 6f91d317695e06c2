package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format names an output serialization
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
	FormatLaTeX    Format = "latex"
)

// Formats lists every supported output format
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON, FormatYAML, FormatXML, FormatLaTeX}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Formats, format) {
		return format, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Problem is the translation of one shorthand source
type Problem struct {
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Source        string   `json:"source" yaml:"source"`
	Sentences     []string `json:"sentences" yaml:"sentences"`
	Pronunciation string   `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
	Warnings      []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Result is everything a translate run prints
type Result struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Problems []Problem `json:"problems" yaml:"problems"`
}

// Options control the human-readable formats
type Options struct {
	// Numbered prefixes sentences with "N. " in text output.
	Numbered bool
}

var (
	latexEscaper = strings.NewReplacer(
		`\`, `\textbackslash{}`,
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
)

// Write serializes result to w in the given format
func Write(w io.Writer, result Result, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, result, opts)
	case FormatMarkdown:
		_, err := io.WriteString(w, markdown(result))
		return err
	case FormatHTML:
		return writeHTML(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	case FormatXML:
		return writeXML(w, result)
	case FormatLaTeX:
		_, err := io.WriteString(w, latex(result))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// titleCase capitalizes words but keeps point names such as ABC intact. A
// Caser is stateful, so each call builds its own.
func titleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

// heading returns the display heading of a problem. Single unnamed problems
// get none.
func heading(result Result, i int) string {
	name := result.Problems[i].Name
	if name == "" && len(result.Problems) > 1 {
		name = fmt.Sprintf("Problem %d", i+1)
	}
	return titleCase(name)
}

func writeText(w io.Writer, result Result, opts Options) error {
	var b strings.Builder

	if result.Title != "" {
		b.WriteString(titleCase(result.Title))
		b.WriteString("\n\n")
	}

	for i, problem := range result.Problems {
		if i > 0 {
			b.WriteString("\n")
		}

		if h := heading(result, i); h != "" {
			b.WriteString(h)
			b.WriteString(":\n")
		}

		for j, sentence := range problem.Sentences {
			if opts.Numbered {
				fmt.Fprintf(&b, "%d. ", j+1)
			}
			b.WriteString(sentence)
			b.WriteString("\n")
		}

		if problem.Pronunciation != "" {
			b.WriteString(problem.Pronunciation)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func markdown(result Result) string {
	var b strings.Builder

	if result.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", titleCase(result.Title))
	}

	for i, problem := range result.Problems {
		if h := heading(result, i); h != "" {
			fmt.Fprintf(&b, "## %s\n\n", h)
		}

		fmt.Fprintf(&b, "```gsl\n%s\n```\n\n", problem.Source)

		for j, sentence := range problem.Sentences {
			// Continuation lines of a casework sentence stay inside the item.
			fmt.Fprintf(&b, "%d. %s\n", j+1, strings.ReplaceAll(sentence, "\n", "\n   "))
		}

		if problem.Pronunciation != "" {
			fmt.Fprintf(&b, "\n*%s*\n", problem.Pronunciation)
		}

		for _, warning := range problem.Warnings {
			fmt.Fprintf(&b, "\n> %s\n", warning)
		}

		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeHTML(w io.Writer, result Result) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown(result)), &buf); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}

	_, err := w.Write(buf.Bytes())

	return err
}

func writeJSON(w io.Writer, result Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return encoder.Encode(normalize(result))
}

func writeYAML(w io.Writer, result Result) error {
	data, err := yaml.Marshal(normalize(result))
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}

	_, err = w.Write(data)

	return err
}

func writeXML(w io.Writer, result Result) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("translation")
	if result.Title != "" {
		root.CreateAttr("title", result.Title)
	}

	for _, problem := range result.Problems {
		el := root.CreateElement("problem")
		if problem.Name != "" {
			el.CreateAttr("name", problem.Name)
		}

		el.CreateElement("source").SetText(problem.Source)

		for i, sentence := range problem.Sentences {
			s := el.CreateElement("sentence")
			s.CreateAttr("n", strconv.Itoa(i+1))
			s.SetText(sentence)
		}

		if problem.Pronunciation != "" {
			el.CreateElement("pronunciation").SetText(problem.Pronunciation)
		}

		for _, warning := range problem.Warnings {
			el.CreateElement("warning").SetText(warning)
		}
	}

	doc.Indent(2)

	_, err := doc.WriteTo(w)

	return err
}

func latex(result Result) string {
	var b strings.Builder

	if result.Title != "" {
		fmt.Fprintf(&b, "\\section*{%s}\n\n", latexEscaper.Replace(titleCase(result.Title)))
	}

	for i, problem := range result.Problems {
		if h := heading(result, i); h != "" {
			fmt.Fprintf(&b, "\\subsection*{%s}\n", latexEscaper.Replace(h))
		}

		b.WriteString("\\begin{enumerate}\n")

		for _, sentence := range problem.Sentences {
			lines := strings.Split(strings.TrimLeft(sentence, "\n"), "\n")
			for k, line := range lines {
				lines[k] = latexEscaper.Replace(line)
			}
			fmt.Fprintf(&b, "  \\item %s\n", strings.Join(lines, " \\\\\n    "))
		}

		b.WriteString("\\end{enumerate}\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// normalize replaces nil sentence lists so serialized output always carries
// an array.
func normalize(result Result) Result {
	out := Result{Title: result.Title, Problems: make([]Problem, len(result.Problems))}

	for i, problem := range result.Problems {
		if problem.Sentences == nil {
			problem.Sentences = []string{}
		}
		out.Problems[i] = problem
	}

	return out
}
