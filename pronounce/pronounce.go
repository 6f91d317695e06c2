// Package pronounce spells geometry shorthand as a string of speakable
// syllables, either on one line or as numbered steps.
package pronounce

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shibukawa/gslc/tokenizer"
)

// syllables maps a token value to its spoken form. An empty syllable is
// silent. Values missing from the map are echoed without a trailing space.
var syllables = map[string]string{
	"..": "duh-duh",
	":":  "kuh",
	";":  "suh",
	",":  "muh",
	".":  "duh",
	"?":  "kwuh",
	"=":  "eh",
	"|":  "shuh",
	"*":  "xing",
	"_":  "by",
	"!":  "not",
	"x":  "ix",
	"a":  "arc",
	"q":  "sect",
	"l":  "line",
	"c":  "circ",
	"w":  "ray",
	"∥":  "pall",
	"⊥":  "perp",
	"∠":  "ang",
	"~":  "sim",
	"≅":  "cong",
	"[":  "area",
	"]":  "",
	"(":  "pairim",
	")":  "",
}

// Pronounce transliterates input. Whitespace is ignored. In step mode the
// wrapper is silent and every separator starts a new numbered line.
func Pronounce(input string, steps bool) string {
	input = stripSpace(input)
	if input == "" {
		return ""
	}

	var b strings.Builder
	step := 1

	if steps {
		b.WriteString("1. ")
	}

	for token := range tokenizer.NewTokenizer(input).Tokens() {
		switch token.Type {
		case tokenizer.EOF:
		case tokenizer.WRAPPER, tokenizer.BACKSLASH:
			if !steps {
				b.WriteString("uh ")
			}
		case tokenizer.SEPARATOR:
			if steps {
				step++
				fmt.Fprintf(&b, "\n%d. ", step)
			} else {
				b.WriteString("mn ")
			}
		case tokenizer.UPPER:
			b.WriteString(strings.ToLower(token.Value))
			b.WriteByte(' ')
		default:
			syllable, ok := syllables[token.Value]
			switch {
			case !ok:
				b.WriteString(token.Value)
			case syllable != "":
				b.WriteString(syllable)
				b.WriteByte(' ')
			}
		}
	}

	out := b.String()
	if steps {
		lines := strings.Split(out, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " ")
		}
		out = strings.Join(lines, "\n")
	}

	return strings.TrimRightFunc(out, unicode.IsSpace)
}

// Steps returns the numbered lines of the step-mode pronunciation.
func Steps(input string) []string {
	out := Pronounce(input, true)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
