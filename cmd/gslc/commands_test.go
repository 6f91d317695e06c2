package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/gslc"
	"github.com/shibukawa/gslc/formatter"
)

// newTestContext returns a context with captured streams and a config path
// that does not exist, so defaults apply.
func newTestContext(t *testing.T, stdin string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	return &Context{
		Config: filepath.Join(t.TempDir(), "gslc.yaml"),
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestTranslateCmd(t *testing.T) {
	t.Run("NumberedText", func(t *testing.T) {
		ctx, stdout, stderr := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{`\\P:A,B/S:AB\\`}}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "1. Construct points A,B.\n2. Connect segment AB.\n", stdout.String())
		assert.Equal(t, "", stderr.String())
	})

	t.Run("Plain", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"[ABC]?"}, Plain: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "What is the area of ABC?\n", stdout.String())
	})

	t.Run("SeveralArguments", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"P:A", "S:AB"}, Parallel: 2}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "Problem 1:\n1. Construct point A.\n\nProblem 2:\n1. Connect segment AB.\n", stdout.String())
	})

	t.Run("JSON", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"S:AB"}, Format: "json"}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, stdout.String(), `"Connect segment AB."`)
		assert.Contains(t, stdout.String(), `"source": "S:AB"`)
	})

	t.Run("Pronunciation", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"P:A/S:AB"}, Pronounce: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Contains(t, stdout.String(), "p kuh a mn s kuh a b\n")
	})

	t.Run("MarkdownSheet", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		path := writeTestFile(t, "sheet.md", "# Sheet\n\n## First\n\n```gsl\nP:A\n```\n")

		cmd := &TranslateCmd{Input: []string{path}, File: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "Sheet\n\nFirst:\n1. Construct point A.\n", stdout.String())
	})

	t.Run("Stdin", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "S:AB\n")

		cmd := &TranslateCmd{Input: []string{"-"}, File: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "1. Connect segment AB.\n", stdout.String())
	})

	t.Run("OutputFile", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		output := filepath.Join(t.TempDir(), "solution.txt")

		cmd := &TranslateCmd{Input: []string{"S:AB"}, Output: output}
		assert.NoError(t, cmd.Run(ctx))

		content, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Equal(t, "1. Connect segment AB.\n", string(content))
		assert.Contains(t, stdout.String(), "Translation written to: "+output)
	})

	t.Run("WarningsDoNotBlock", func(t *testing.T) {
		ctx, stdout, stderr := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"[ABC=20"}}
		assert.NoError(t, cmd.Run(ctx))
		assert.NotEqual(t, "", stdout.String())
		assert.Contains(t, stderr.String(), "<arg 1>:1:1: unbalanced")
	})

	t.Run("NoValidate", func(t *testing.T) {
		ctx, _, stderr := newTestContext(t, "")

		cmd := &TranslateCmd{Input: []string{"[ABC=20"}, NoValidate: true}
		assert.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "", stderr.String())
	})

	t.Run("StrictConfig", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		ctx.Config = writeTestFile(t, "gslc.yaml", "validation:\n  strict: true\n")

		cmd := &TranslateCmd{Input: []string{"[ABC=20"}}
		err := cmd.Run(ctx)
		assert.True(t, errors.Is(err, ErrValidationWarnings))
		assert.Equal(t, "", stdout.String())
	})

	t.Run("NoInput", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")

		err := (&TranslateCmd{}).Run(ctx)
		assert.True(t, errors.Is(err, gslc.ErrNoInput))
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")

		err := (&TranslateCmd{Input: []string{"S:AB"}, Format: "pdf"}).Run(ctx)
		assert.True(t, errors.Is(err, formatter.ErrUnsupportedFormat))
	})
}

func TestPronounceCmd(t *testing.T) {
	tests := []struct {
		name     string
		cmd      PronounceCmd
		expected string
	}{
		{"OneLine", PronounceCmd{Input: []string{`\\P:A/S:AB\\`}}, "uh p kuh a mn s kuh a b uh\n"},
		{"Steps", PronounceCmd{Input: []string{`\\P:A/S:AB\\`}, Steps: true}, "1. p kuh a\n2. s kuh a b\n"},
		{"Several", PronounceCmd{Input: []string{"P:A", "S:AB"}}, "p kuh a\ns kuh a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, stdout, _ := newTestContext(t, "")

			assert.NoError(t, tt.cmd.Run(ctx))
			assert.Equal(t, tt.expected, stdout.String())
		})
	}
}

func TestValidateCmd(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		ctx, stdout, stderr := newTestContext(t, "")

		assert.NoError(t, (&ValidateCmd{Input: []string{"P:A/S:AB"}}).Run(ctx))
		assert.Equal(t, "", stdout.String())
		assert.Contains(t, stderr.String(), "Validation completed successfully")
	})

	t.Run("Warnings", func(t *testing.T) {
		ctx, stdout, stderr := newTestContext(t, "")

		assert.NoError(t, (&ValidateCmd{Input: []string{"X:ABC"}}).Run(ctx))
		assert.Contains(t, stdout.String(), "<arg 1>:1:1: unknown-prefix")
		assert.Contains(t, stderr.String(), "1 warning(s)")
	})

	t.Run("Strict", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")

		err := (&ValidateCmd{Input: []string{"X:ABC"}, Strict: true}).Run(ctx)
		assert.True(t, errors.Is(err, ErrValidationWarnings))
	})

	t.Run("MarkdownLines", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		path := writeTestFile(t, "sheet.md", "# Sheet\n\n```gsl\nP:A\n```\n\n```gsl\nX:ABC\n```\n")

		assert.NoError(t, (&ValidateCmd{Input: []string{path}, File: true}).Run(ctx))
		assert.True(t, strings.HasPrefix(stdout.String(), path+":8:1: unknown-prefix"), stdout.String())
	})
}

func TestFmtCmd(t *testing.T) {
	t.Run("Stdin", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, " P:A / S:AB /\n")

		assert.NoError(t, (&FmtCmd{}).Run(ctx))
		assert.Equal(t, "P:A/S:AB\n", stdout.String())
	})

	t.Run("OnePerLine", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, `\\P:A/S:AB\\`)

		assert.NoError(t, (&FmtCmd{OnePerLine: true}).Run(ctx))
		assert.Equal(t, "\\\\P:A/\nS:AB\\\\\n", stdout.String())
	})

	t.Run("CheckFormatted", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "P:A/S:AB\n")

		assert.NoError(t, (&FmtCmd{Check: true}).Run(ctx))
	})

	t.Run("CheckUnformatted", func(t *testing.T) {
		ctx, _, stderr := newTestContext(t, "P:A / S:AB\n")

		err := (&FmtCmd{Check: true}).Run(ctx)
		assert.True(t, errors.Is(err, ErrFileNotFormatted))
		assert.Contains(t, stderr.String(), "<stdin> is not formatted")
	})

	t.Run("Diff", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "P:A / S:AB\n")

		assert.NoError(t, (&FmtCmd{Diff: true}).Run(ctx))
		assert.Contains(t, stdout.String(), "-P:A / S:AB")
		assert.Contains(t, stdout.String(), "+P:A/S:AB")
	})

	t.Run("WriteDirectory", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")
		dir := t.TempDir()
		gsl := filepath.Join(dir, "problem.gsl")
		md := filepath.Join(dir, "sheet.md")
		other := filepath.Join(dir, "notes.txt")
		assert.NoError(t, os.WriteFile(gsl, []byte("P:A / S:AB"), 0644))
		assert.NoError(t, os.WriteFile(md, []byte("# Sheet\n\n```gsl\nP:A / S:AB\n```\n"), 0644))
		assert.NoError(t, os.WriteFile(other, []byte("P:A / S:AB"), 0644))

		assert.NoError(t, (&FmtCmd{Input: dir, Write: true}).Run(ctx))

		content, err := os.ReadFile(gsl)
		assert.NoError(t, err)
		assert.Equal(t, "P:A/S:AB\n", string(content))

		content, err = os.ReadFile(md)
		assert.NoError(t, err)
		assert.Equal(t, "# Sheet\n\n```gsl\nP:A/S:AB\n```\n", string(content))

		content, err = os.ReadFile(other)
		assert.NoError(t, err)
		assert.Equal(t, "P:A / S:AB", string(content))

		assert.Contains(t, stdout.String(), "Formatted: "+gsl)
	})
}

func TestReferenceCmd(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		assert.NoError(t, (&ReferenceCmd{}).Run(ctx))
		for _, title := range []string{"Properties", "Relationships", "Derived constructions", "Constants", "Theorems"} {
			assert.Contains(t, stdout.String(), title)
		}
	})

	t.Run("Single", func(t *testing.T) {
		ctx, stdout, _ := newTestContext(t, "")

		assert.NoError(t, (&ReferenceCmd{Table: "properties"}).Run(ctx))
		assert.Contains(t, stdout.String(), "equilateral")
		assert.NotContains(t, stdout.String(), "Theorems")
	})

	t.Run("Unknown", func(t *testing.T) {
		ctx, _, _ := newTestContext(t, "")

		err := (&ReferenceCmd{Table: "axioms"}).Run(ctx)
		assert.True(t, errors.Is(err, ErrUnknownTable))
	})
}

func TestAboutAndVersion(t *testing.T) {
	ctx, stdout, _ := newTestContext(t, "")

	assert.NoError(t, (&AboutCmd{}).Run(ctx))
	assert.Contains(t, stdout.String(), "Geometry Shorthand Language compiler")

	stdout.Reset()
	assert.NoError(t, (&VersionCmd{}).Run(ctx))
	assert.Equal(t, "gslc v"+version+"\n", stdout.String())
}
