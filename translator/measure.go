package translator

import (
	"fmt"
	"strings"

	"github.com/shibukawa/gslc/symbols"
)

const angleGlyph = "∠"

var constantReplacer = newConstantReplacer()

func newConstantReplacer() *strings.Replacer {
	codes := symbols.ConstantCodes()
	pairs := make([]string, 0, 2*len(codes))

	for _, code := range codes {
		name, _ := symbols.Constant(code)
		pairs = append(pairs, code, name)
	}

	return strings.NewReplacer(pairs...)
}

// expandConstants spells out named constants such as `\P` in an assigned
// value. A single pass keeps already expanded glyphs from expanding again.
func expandConstants(value string) string {
	return constantReplacer.Replace(value)
}

// measured matches statements that start with the measure letter and assign
// or query a value.
func measured(letter string) func(string) bool {
	return func(stmt string) bool {
		return strings.HasPrefix(stmt, letter) && strings.ContainsAny(stmt, "=?")
	}
}

func enclosed(open, close string) func(string) bool {
	return func(stmt string) bool {
		return strings.Contains(stmt, open) && strings.Contains(stmt, close)
	}
}

// assignment splits NAME=VALUE with exactly one '='.
func assignment(stmt string) (name, value string, ok bool) {
	parts := strings.Split(stmt, "=")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func renderArc(stmt string) string {
	if strings.Contains(stmt, "=") && !strings.Contains(stmt, "!=") && !strings.HasSuffix(stmt, "?") {
		if name, value, ok := assignment(stmt); ok {
			return fmt.Sprintf("Arc %s has length %s.", strings.TrimPrefix(name, "a"), expandConstants(value))
		}
	}

	if strings.Contains(stmt, "!=") || strings.Contains(stmt, "≠") {
		return notEqualReplacer.Replace(stmt)
	}

	if strings.HasSuffix(stmt, "?") {
		return fmt.Sprintf("What is the length of arc %s?", strings.TrimPrefix(strings.TrimRight(stmt, "?"), "a"))
	}

	return stmt
}

func renderSector(stmt string) string {
	if strings.Contains(stmt, "=") && !strings.HasSuffix(stmt, "?") {
		if name, value, ok := assignment(stmt); ok {
			return fmt.Sprintf("The area of sector %s is %s.", strings.TrimPrefix(name, "q"), expandConstants(value))
		}
	}

	if strings.HasSuffix(stmt, "?") {
		return fmt.Sprintf("What is the area of sector %s?", strings.TrimPrefix(strings.TrimRight(stmt, "?"), "q"))
	}

	return stmt
}

func renderArea(stmt string) string {
	return renderEnclosed(stmt, "[", "]", "area")
}

func renderPerimeter(stmt string) string {
	return renderEnclosed(stmt, "(", ")", "perimeter")
}

// renderEnclosed handles [X]=V / [X]? style assignments and queries. Any
// other shape is echoed.
func renderEnclosed(stmt, open, close, measure string) string {
	start := strings.Index(stmt, open)
	end := strings.Index(stmt, close)
	if end < start {
		return stmt
	}

	object := stmt[start+len(open) : end]
	rest := stmt[end+len(close):]

	if value, ok := strings.CutPrefix(rest, "="); ok {
		return fmt.Sprintf("Let the %s of %s be %s.", measure, object, expandConstants(value))
	}

	if rest == "?" {
		return fmt.Sprintf("What is the %s of %s?", measure, object)
	}

	return stmt
}

// hasAngleMark looks for the angle glyph or a '<' that does not start "<=".
func hasAngleMark(stmt string) bool {
	if strings.Contains(stmt, angleGlyph) {
		return true
	}

	for i := 0; i < len(stmt); i++ {
		if stmt[i] == '<' && (i+1 == len(stmt) || stmt[i+1] != '=') {
			return true
		}
	}

	return false
}

func renderAngle(stmt string) string {
	rest := strings.NewReplacer("<", "", angleGlyph, "").Replace(stmt)

	// An arc after the angle mark is measured in degrees.
	if arc, ok := strings.CutPrefix(rest, "a"); ok {
		if name, value, ok := assignment(arc); ok {
			return fmt.Sprintf("Arc %s has measure %s degrees.", name, value)
		}
		if strings.HasSuffix(arc, "?") {
			return fmt.Sprintf("What is the measure of arc %s?", strings.TrimRight(arc, "?"))
		}
	}

	if strings.Contains(rest, "=") {
		if name, value, ok := assignment(rest); ok {
			return fmt.Sprintf("Angle %s measures %s degrees.", name, value)
		}
	}

	if strings.HasSuffix(rest, "?") {
		return fmt.Sprintf("What is the measure of angle %s?", strings.TrimRight(rest, "?"))
	}

	return "Angle " + rest
}
