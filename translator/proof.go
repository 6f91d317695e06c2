package translator

import (
	"fmt"
	"strings"

	"github.com/shibukawa/gslc/symbols"
)

const (
	proveMarker              = `\p:`
	proveByContradictionMark = `\pC:`
	caseworkOpen             = "<<"
	caseworkClose            = ">>"
)

var proofMarkers = map[string]string{
	`\q`:  "And that is what was to be shown.",
	"□":   "And that is what was to be shown.",
	`\qC`: "Achieving a contradiction.",
	"↯":   "Achieving a contradiction.",
	`\bc`: "Because",
	"∵":   "Because",
	`\th`: "Therefore",
	"∴":   "Therefore",
}

// connectives are tried group by group; the first group present in the
// statement is substituted and the rest are left alone.
var connectives = []struct {
	tokens []string
	phrase string
}{
	{[]string{"||", "∨"}, " or "},
	{[]string{"&&", "∧"}, " and "},
	{[]string{"=>", "⊃"}, " implies "},
}

var quantifiers = []struct {
	token  string
	phrase string
}{
	{"|A", "For all "},
	{"∀", "For all "},
	{"|E", "There exists "},
	{"∃", "There exists "},
}

func cutProofPrefix(stmt string) (intro, rest string, ok bool) {
	if rest, ok := strings.CutPrefix(stmt, proveMarker); ok {
		return "We will prove: ", rest, true
	}
	if rest, ok := strings.CutPrefix(stmt, proveByContradictionMark); ok {
		return "We will prove by contradiction: ", rest, true
	}
	return "", stmt, false
}

func hasProofPrefix(stmt string) bool {
	_, _, ok := cutProofPrefix(stmt)
	return ok
}

func isProofMarker(stmt string) bool {
	_, ok := proofMarkers[stmt]
	return ok
}

func renderProofMarker(stmt string) string {
	return proofMarkers[stmt]
}

func hasConnective(stmt string) bool {
	for _, group := range connectives {
		for _, token := range group.tokens {
			if strings.Contains(stmt, token) {
				return true
			}
		}
	}
	return false
}

// renderConnective substitutes in place; operands are not translated.
func renderConnective(stmt string) string {
	for _, group := range connectives {
		found := false
		for _, token := range group.tokens {
			if strings.Contains(stmt, token) {
				found = true
				break
			}
		}

		if !found {
			continue
		}

		for _, token := range group.tokens {
			stmt = strings.ReplaceAll(stmt, token, group.phrase)
		}

		return stmt
	}

	return stmt
}

func hasQuantifier(stmt string) bool {
	for _, q := range quantifiers {
		if strings.HasPrefix(stmt, q.token) {
			return true
		}
	}
	return false
}

// renderQuantifier passes the quantified body through untranslated.
func renderQuantifier(stmt string) string {
	for _, q := range quantifiers {
		if body, ok := strings.CutPrefix(stmt, q.token); ok {
			return q.phrase + body
		}
	}
	return stmt
}

func isCasework(stmt string) bool {
	return strings.Contains(stmt, caseworkOpen)
}

// renderCasework translates the head and enumerates the cases of the block.
// An unterminated block opens casework without listing cases.
func renderCasework(stmt string) string {
	head, block, _ := strings.Cut(stmt, caseworkOpen)
	intro := TranslateStatement(head)

	interior, _, closed := strings.Cut(block, caseworkClose)
	if !closed {
		return intro + "\nBegin casework."
	}

	return fmt.Sprintf("%s\nBegin casework: %s", intro, TranslateCasework(interior))
}

func isCaseworkEnd(stmt string) bool {
	return stmt == caseworkClose || stmt == `\`+caseworkClose
}

func renderCaseworkEnd(string) string {
	return "End casework."
}

func isTheorem(stmt string) bool {
	_, ok := symbols.LookupTheorem(stmt)
	return ok
}

func renderTheorem(stmt string) string {
	th, _ := symbols.LookupTheorem(stmt)
	return fmt.Sprintf("By %s.", th.Name)
}
