package translator

import (
	"fmt"
	"strings"

	"github.com/shibukawa/gslc/symbols"
)

var directions = []struct {
	suffix  string
	subject string // phrase used when an object follows
	alone   string // phrase used for a bare hint
}{
	{"-u", "above", "above"},
	{"-d", "below", "below"},
	{"-l", "to the left of", "to the left"},
	{"-r", "to the right of", "to the right"},
}

// ParseConditions renders the comma-separated constraint list that follows
// the pipe of a point construction. Each clause yields one fragment; the
// caller joins them.
func ParseConditions(list string) []string {
	clauses := strings.Split(list, ",")
	fragments := make([]string, 0, len(clauses))

	for _, clause := range clauses {
		fragments = append(fragments, parseCondition(strings.TrimSpace(clause)))
	}

	return fragments
}

func parseCondition(clause string) string {
	switch {
	case strings.HasPrefix(clause, "R:"):
		return regularPolygon(clause[len("R:"):])
	case strings.Contains(clause, "[") && strings.Contains(clause, "]") && strings.Contains(clause, "="):
		return areaCondition(clause)
	case strings.Contains(clause, "*"):
		return starCondition(clause)
	}

	if fragment, ok := directionCondition(clause); ok {
		return fragment
	}

	return clause
}

func areaCondition(clause string) string {
	start := strings.Index(clause, "[")
	end := strings.Index(clause, "]")
	if end < start {
		return clause
	}

	_, value, ok := strings.Cut(clause[end:], "=")
	if !ok {
		return clause
	}

	return fmt.Sprintf("the area of %s is %s", clause[start+1:end], expandConstants(value))
}

// starCondition renders OBJ*CODE. A ';' in the object part makes it a
// relationship between several objects.
func starCondition(clause string) string {
	parts := strings.Split(clause, "*")
	if len(parts) != 2 {
		return clause
	}

	object, code := parts[0], parts[1]

	switch code {
	case "+":
		return object + " goes clockwise"
	case "-":
		return object + " goes counterclockwise"
	}

	if strings.Contains(object, ";") {
		return fmt.Sprintf("%s are %s", joinObjects(object), relationshipOrProperty(code))
	}

	return fmt.Sprintf("%s is %s", object, propertyOrRelationship(code))
}

func directionCondition(clause string) (string, bool) {
	for _, d := range directions {
		subject, ok := strings.CutSuffix(clause, d.suffix)
		if !ok {
			continue
		}

		if subject == "" {
			return "it lies " + d.alone, true
		}

		return fmt.Sprintf("it lies %s %s", d.subject, subject), true
	}

	return "", false
}

// propertyOrRelationship resolves a star-notation code for a single object,
// echoing unknown codes.
func propertyOrRelationship(code string) string {
	if name, ok := symbols.Property(code); ok {
		return name
	}
	if name, ok := symbols.Relationship(code); ok {
		return name
	}
	return code
}

// relationshipOrProperty resolves a star-notation code shared by several
// objects, echoing unknown codes.
func relationshipOrProperty(code string) string {
	if name, ok := symbols.Relationship(code); ok {
		return name
	}
	if name, ok := symbols.Property(code); ok {
		return name
	}
	return code
}

// joinObjects turns "AB;CD;EF" into "AB, CD, and EF".
func joinObjects(list string) string {
	objects := strings.Split(list, ";")

	switch len(objects) {
	case 1:
		return objects[0]
	case 2:
		return objects[0] + " and " + objects[1]
	default:
		return strings.Join(objects[:len(objects)-1], ", ") + ", and " + objects[len(objects)-1]
	}
}
