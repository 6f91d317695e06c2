package translator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shibukawa/gslc/symbols"
)

var regularPolygonNouns = map[string]string{
	"3": "equilateral triangle",
	"4": "square",
	"5": "regular pentagon",
	"6": "regular hexagon",
	"8": "regular octagon",
}

// objectNouns picks the noun for an intersected object by its role prefix.
var objectNouns = []struct {
	prefix string
	noun   string
}{
	{"w", "ray"},
	{"l", "line"},
	{"c", "circle"},
}

func isDerived(stmt string) bool {
	_, _, ok := cutDerived(stmt)
	return ok
}

// cutDerived finds the derived construction prefix of stmt. Prefixes are
// tried longest first.
func cutDerived(stmt string) (name, rest string, ok bool) {
	for _, prefix := range symbols.DerivedPrefixes() {
		if rest, ok := strings.CutPrefix(stmt, prefix+":"); ok {
			name, _ := symbols.DerivedConstruction(prefix)
			return name, rest, true
		}
	}
	return "", stmt, false
}

func renderDerived(stmt string) string {
	name, rest, _ := cutDerived(stmt)
	return fmt.Sprintf("Construct the %s of %s.", name, rest)
}

func renderGraph(stmt string) string {
	equation := strings.Trim(strings.TrimSpace(strings.TrimPrefix(stmt, "G:")), "{}")
	return fmt.Sprintf("Graph the function %s.", equation)
}

func renderPoint(stmt string) string {
	rest := strings.TrimPrefix(stmt, "P:")

	if strings.Contains(rest, ",") && !strings.ContainsAny(rest, ".|x") {
		return fmt.Sprintf("Construct points %s.", rest)
	}

	if sentence, ok := pointIntersection(rest); ok {
		return sentence
	}

	if sentence, ok := pointCoordinates(rest); ok {
		return sentence
	}

	if point, region, ok := strings.Cut(rest, ".."); ok {
		return fmt.Sprintf("Construct point %s in the region %s.", point, region)
	}

	if sentence, ok := pointWithConditions(rest); ok {
		return sentence
	}

	if point, object, ok := strings.Cut(rest, "."); ok {
		return fmt.Sprintf("Construct point %s on %s.", point, object)
	}

	return fmt.Sprintf("Construct point %s.", rest)
}

// pointIntersection handles P=OBJ1xOBJ2.
func pointIntersection(rest string) (string, bool) {
	if !strings.Contains(rest, "x") {
		return "", false
	}

	point, intersection, ok := strings.Cut(rest, "=")
	if !ok {
		return "", false
	}

	first, second, ok := strings.Cut(intersection, "x")
	if !ok {
		return "", false
	}

	return fmt.Sprintf("Let point %s be the intersection of %s and %s.", point, describeObject(first), describeObject(second)), true
}

func describeObject(object string) string {
	for _, n := range objectNouns {
		if name, ok := strings.CutPrefix(object, n.prefix); ok {
			return n.noun + " " + name
		}
	}
	return "segment " + object
}

// pointCoordinates handles P{x,y} and P|{x,y}.
func pointCoordinates(rest string) (string, bool) {
	start := strings.Index(rest, "{")
	end := strings.Index(rest, "}")
	if start < 0 || end < start {
		return "", false
	}

	point := rest[:start]
	if pipe := strings.Index(point, "|"); pipe >= 0 {
		point = point[:pipe]
	}

	return fmt.Sprintf("Let point %s be at coordinates %s.", point, rest[start+1:end]), true
}

// pointWithConditions handles P.OBJ|COND,COND.
func pointWithConditions(rest string) (string, bool) {
	pointObject, conditions, ok := strings.Cut(rest, "|")
	if !ok {
		return "", false
	}

	point, object, ok := strings.Cut(pointObject, ".")
	if !ok {
		return "", false
	}

	return fmt.Sprintf("Construct point %s on %s such that %s.", point, object, strings.Join(ParseConditions(conditions), ", ")), true
}

func renderCircle(stmt string) string {
	rest := strings.TrimPrefix(stmt, "C:")
	parts := strings.Split(rest, ";")

	switch len(parts) {
	case 3:
		return fmt.Sprintf("Construct a circle through points %s, %s, and %s.", parts[0], parts[1], parts[2])
	case 2:
		if isNumeric(parts[1]) {
			return fmt.Sprintf("Construct a circle with center %s and radius %s.", parts[0], parts[1])
		}
		return fmt.Sprintf("Construct a circle with center %s passing through point %s.", parts[0], parts[1])
	case 1:
		if name, ok := strings.CutPrefix(rest, "="); ok {
			return fmt.Sprintf("Construct circle %s.", name)
		}
		return fmt.Sprintf("Construct a circle passing through point %s.", rest)
	default:
		return fmt.Sprintf("Construct circle with parameters %s.", rest)
	}
}

// isNumeric reports whether s is a non-empty run of digits and dots.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsNumber(r) && r != '.' {
			return false
		}
	}

	return true
}

func renderRegularPolygon(stmt string) string {
	return fmt.Sprintf("Construct %s.", regularPolygon(strings.TrimPrefix(stmt, "R:")))
}

// regularPolygon renders "<n>;<side>=<name>" as a noun phrase, or returns
// desc unchanged when it does not have that shape.
func regularPolygon(desc string) string {
	parts := strings.Split(desc, ";")
	if len(parts) < 2 {
		return desc
	}

	side, name, ok := strings.Cut(parts[1], "=")
	if !ok {
		return desc
	}

	n := parts[0]
	if noun, ok := regularPolygonNouns[n]; ok {
		return fmt.Sprintf("%s %s with side %s", noun, name, side)
	}

	return fmt.Sprintf("regular %s-gon %s with side %s", n, name, side)
}
