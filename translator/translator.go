// Package translator renders geometry shorthand statements as English
// sentences.
//
// Classification is purely syntactic: each statement is tested against an
// ordered rule list and the first match renders it. Malformed input never
// fails; it degrades to a partially filled template or is echoed unchanged.
package translator

import (
	"fmt"
	"strings"
)

const (
	wrapper   = `\\`
	separator = "/"
)

// rule pairs a classifier predicate with the renderer for its category.
// Statements reaching match and render are already trimmed and non-empty.
type rule struct {
	kind   Kind
	match  func(stmt string) bool
	render func(stmt string) string
}

// rules is the dispatch priority. Earlier entries shadow later ones.
var rules []rule

func init() {
	rules = []rule{
		{KindProof, hasProofPrefix, TranslateStatement},
		{KindProofMarker, isProofMarker, renderProofMarker},
		{KindConnective, hasConnective, renderConnective},
		{KindQuantifier, hasQuantifier, renderQuantifier},
		{KindCasework, isCasework, renderCasework},
		{KindCaseworkEnd, isCaseworkEnd, renderCaseworkEnd},
		{KindDerived, isDerived, renderDerived},
		{KindGraph, prefixed("G:"), renderGraph},
		{KindPoint, prefixed("P:"), renderPoint},
		{KindSegment, prefixed("S:"), template("S:", "Connect segment %s.")},
		{KindLine, prefixed("L:"), template("L:", "Connect line %s.")},
		{KindRay, prefixed("W:"), template("W:", "Construct ray %s.")},
		{KindCircle, prefixed("C:"), renderCircle},
		{KindPolygon, prefixed("J:"), template("J:", "Construct polygon %s.")},
		{KindRegularPolygon, prefixed("R:"), renderRegularPolygon},
		{KindArc, measured("a"), renderArc},
		{KindSector, measured("q"), renderSector},
		{KindArea, enclosed("[", "]"), renderArea},
		{KindPerimeter, enclosed("(", ")"), renderPerimeter},
		{KindAngle, hasAngleMark, renderAngle},
		{KindProofInquiry, isProofInquiry, renderProofInquiry},
		{KindPropertyQuestion, isPropertyQuestion, renderPropertyQuestion},
		{KindQuery, isQuery, renderQuery},
		{KindComparison, hasComparison, renderComparison},
		{KindTheorem, isTheorem, renderTheorem},
	}
}

// Split strips the outer wrapper and returns the trimmed, non-empty
// statements in their original order.
func Split(text string) []string {
	text = strings.TrimSpace(text)
	if len(text) >= 2*len(wrapper) && strings.HasPrefix(text, wrapper) && strings.HasSuffix(text, wrapper) {
		text = text[len(wrapper) : len(text)-len(wrapper)]
	}

	pieces := strings.Split(text, separator)
	statements := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			statements = append(statements, piece)
		}
	}

	return statements
}

// Translate splits text and translates every statement, one sentence per
// statement.
func Translate(text string) []string {
	statements := Split(text)
	sentences := make([]string, len(statements))

	for i, stmt := range statements {
		sentences[i] = TranslateStatement(stmt)
	}

	return sentences
}

// Classify reports the category of a single statement.
func Classify(stmt string) Kind {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return KindLiteral
	}

	for _, r := range rules {
		if r.match(stmt) {
			return r.kind
		}
	}

	return KindLiteral
}

// TranslateStatement renders one statement as an English sentence.
//
// Proof wrappers are unwound in a loop, so arbitrarily deep nesting does not
// grow the call stack.
func TranslateStatement(stmt string) string {
	stmt = strings.TrimSpace(stmt)

	var heading strings.Builder

	for {
		intro, rest, ok := cutProofPrefix(stmt)
		if !ok {
			break
		}

		heading.WriteString(intro)
		stmt = strings.TrimSpace(rest)
	}

	return heading.String() + dispatch(stmt)
}

func dispatch(stmt string) string {
	if stmt == "" {
		return ""
	}

	for _, r := range rules {
		if r.match(stmt) {
			return r.render(stmt)
		}
	}

	return stmt
}

func prefixed(prefix string) func(string) bool {
	return func(stmt string) bool {
		return strings.HasPrefix(stmt, prefix)
	}
}

// template renders the text after prefix into format.
func template(prefix, format string) func(string) string {
	return func(stmt string) string {
		return fmt.Sprintf(format, strings.TrimPrefix(stmt, prefix))
	}
}
