// Package symbols holds the static code tables of the geometry shorthand.
//
// The tables are built once at package initialization and never mutated, so
// every lookup is safe for concurrent use without locking.
package symbols

import (
	"cmp"
	"slices"
)

// Entry is one code and its canonical English phrase.
type Entry struct {
	Code    string
	Meaning string
}

// Theorem is a named result that can be cited in a proof.
type Theorem struct {
	Code        string
	Name        string
	Description string
}

var properties = map[string]string{
	"R":  "regular",
	"CV": "convex",
	"CC": "concave",
	"RT": "right",
	"OB": "obtuse",
	"AC": "acute",
	"SC": "scalene",
	"IS": "isosceles",
	"TR": "trapezoid",
	"PL": "parallelogram",
	"EQ": "equilateral",
	"EA": "equiangular",
	"C":  "cyclic",
	"TP": "tangential",
}

var relationships = map[string]string{
	"S":  "collinear",
	"P":  "parallel",
	"∥":  "parallel",
	"PR": "perpendicular",
	"PD": "perpendicular",
	"⊥":  "perpendicular",
	"TG": "tangent",
	"CG": "congruent",
	"≅":  "congruent",
	"SM": "similar",
	"~":  "similar",
}

var theorems = map[string]Theorem{
	"_PY":  {Name: "Pythagorean Theorem", Description: "In a right triangle the square of the hypotenuse equals the sum of the squares of the legs."},
	"_TI":  {Name: "Triangle Inequality", Description: "Any side of a triangle is shorter than the sum of the other two."},
	"_ST":  {Name: "Stewart's Theorem", Description: "Relates the length of a cevian to the side lengths of the triangle."},
	"_AT":  {Name: "Apollonius Theorem", Description: "Relates the length of a median to the side lengths of the triangle."},
	"_VT":  {Name: "Viviani's Theorem", Description: "The distances from an interior point to the sides of an equilateral triangle sum to its altitude."},
	"_NP":  {Name: "Napoleon's Theorem", Description: "Centers of equilateral triangles erected on the sides of a triangle form an equilateral triangle."},
	"_EL":  {Name: "Euler Line", Description: "Orthocenter, centroid and circumcenter of a triangle are collinear."},
	"_9C":  {Name: "Nine-Point Circle", Description: "Midpoints of sides, feet of altitudes and midpoints to the orthocenter lie on one circle."},
	"_SL":  {Name: "Simson Line", Description: "Feet of perpendiculars from a point on the circumcircle to the sides are collinear."},
	"_CV":  {Name: "Ceva's Theorem", Description: "Condition on side ratios for three cevians to be concurrent."},
	"_ML":  {Name: "Menelaus' Theorem", Description: "Condition on side ratios for three points on the side lines to be collinear."},
	"_AB":  {Name: "Angle Bisector Theorem", Description: "An angle bisector divides the opposite side in the ratio of the adjacent sides."},
	"_IE":  {Name: "Incenter-Excenter Lemma", Description: "The arc midpoint is equidistant from two vertices, the incenter and the excenter."},
	"_CT":  {Name: "Carnot's Theorem", Description: "Signed distances from the circumcenter to the sides sum to R + r."},
	"_MQ":  {Name: "Miquel's Theorem", Description: "Circles through a vertex and two points on adjacent sides share a common point."},
	"_ET":  {Name: "Euler's Theorem", Description: "The distance between circumcenter and incenter satisfies d² = R(R - 2r)."},
	"_DT":  {Name: "Desargue's Theorem", Description: "Two triangles are in perspective from a point iff they are in perspective from a line."},
	"_HF":  {Name: "Heron's Formula", Description: "Area of a triangle from its three side lengths."},
	"_QF":  {Name: "Bretschinder's Formula", Description: "Area of a general quadrilateral from its sides and two opposite angles."},
	"_BF":  {Name: "Brahmagupta's Formula", Description: "Area of a cyclic quadrilateral from its four side lengths."},
	"_JT":  {Name: "Japanese Theorem", Description: "Inradii of any triangulation of a cyclic polygon have a constant sum."},
	"_NT":  {Name: "Newton's Theorem", Description: "In a tangential quadrilateral the incenter lies on the Newton line."},
	"_PT":  {Name: "Ptolemy's Theorem", Description: "In a cyclic quadrilateral the product of the diagonals equals the sum of products of opposite sides."},
	"_PP":  {Name: "Power of a Point Theorem", Description: "Products of segment lengths along lines through a point to a circle are equal."},
	"_BT":  {Name: "Butterfly Theorem", Description: "A midpoint of a chord is also the midpoint of the segment cut by two other chords through it."},
	"_PC":  {Name: "Pascal's Theorem", Description: "Opposite sides of a hexagon inscribed in a conic meet in three collinear points."},
	"_LC":  {Name: "Law of Cosines", Description: "c² = a² + b² - 2ab cos C."},
	"_LS":  {Name: "Law of Sines", Description: "Sides are proportional to the sines of the opposite angles."},
	"_LT":  {Name: "Law of Tangents", Description: "Relates the tangents of half the sum and difference of two angles to the opposite sides."},
	"_PK":  {Name: "Pick's Theorem", Description: "Area of a lattice polygon from its interior and boundary lattice points."},
	"_SH":  {Name: "Shoelace Theorem", Description: "Area of a simple polygon from the coordinates of its vertices."},
	"_SSC": {Name: "SSS Congruence", Description: "Three pairs of equal sides make two triangles congruent."},
	"_SAC": {Name: "SAS Congruence", Description: "Two pairs of equal sides and the included angle make two triangles congruent."},
	"_SSA": {Name: "SSA Congruence", Description: "Two sides and a non-included angle, valid only in restricted cases."},
	"_ASA": {Name: "ASA Congruence", Description: "Two angles and the included side make two triangles congruent."},
	"_AAS": {Name: "AAS Congruence", Description: "Two angles and a non-included side make two triangles congruent."},
	"_HL":  {Name: "HL Congruence", Description: "Hypotenuse and one leg make two right triangles congruent."},
	"_AA":  {Name: "AA Similarity", Description: "Two pairs of equal angles make two triangles similar."},
	"_SAS": {Name: "SAS Similarity", Description: "Proportional sides with an equal included angle make two triangles similar."},
	"_SSS": {Name: "SSS Similarity", Description: "Three proportional pairs of sides make two triangles similar."},
}

var constants = map[string]string{
	`\T`: "τ (tau)",
	"τ":  "τ (tau)",
	`\P`: "π (pi)",
	"π":  "π (pi)",
	`\G`: "φ (phi)",
	"φ":  "φ (phi)",
}

var derivedConstructions = map[string]string{
	"PB":  "perpendicular bisector",
	"CCO": "circumcenter",
	"CC":  "circumcircle",
	"AB":  "angle bisector",
	"ICO": "incenter",
	"IC":  "incircle",
	"EAB": "exterior angle bisector",
	"ECO": "excenter",
	"EC":  "excircle",
	"M":   "midpoint",
	"MD":  "median",
	"CT":  "centroid",
	"PD":  "perpendicular",
	"OC":  "orthocenter",
	"9O":  "nine-point center",
	"9C":  "nine-point circle",
	"PL":  "parallel line",
	"TG":  "tangent line",
}

var (
	derivedPrefixes = longestFirst(derivedConstructions)
	constantCodes   = longestFirst(constants)
)

func init() {
	for code, th := range theorems {
		th.Code = code
		theorems[code] = th
	}
}

// longestFirst returns the map keys ordered by descending byte length, ties
// broken lexicographically, so that a shorter code never shadows a longer one.
func longestFirst[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return keys
}

// Property returns the phrase for a property code such as "RT".
func Property(code string) (string, bool) {
	v, ok := properties[code]
	return v, ok
}

// Relationship returns the phrase for a relationship code such as "PR".
func Relationship(code string) (string, bool) {
	v, ok := relationships[code]
	return v, ok
}

// LookupTheorem returns the theorem cited by code such as "_PY".
func LookupTheorem(code string) (Theorem, bool) {
	th, ok := theorems[code]
	return th, ok
}

// Constant returns the phrase for a named constant such as `\P` or "π".
func Constant(code string) (string, bool) {
	v, ok := constants[code]
	return v, ok
}

// DerivedConstruction returns the object name for a derived construction
// prefix such as "CCO".
func DerivedConstruction(code string) (string, bool) {
	v, ok := derivedConstructions[code]
	return v, ok
}

// DerivedPrefixes returns the derived construction prefixes in match order.
func DerivedPrefixes() []string {
	return slices.Clone(derivedPrefixes)
}

// ConstantCodes returns the constant codes in match order.
func ConstantCodes() []string {
	return slices.Clone(constantCodes)
}

// Properties lists the property table ordered by code.
func Properties() []Entry { return entries(properties) }

// Relationships lists the relationship table ordered by code.
func Relationships() []Entry { return entries(relationships) }

// Constants lists the constant table ordered by code.
func Constants() []Entry { return entries(constants) }

// DerivedConstructions lists the derived construction table ordered by code.
func DerivedConstructions() []Entry { return entries(derivedConstructions) }

// Theorems lists the theorem table ordered by code.
func Theorems() []Theorem {
	result := make([]Theorem, 0, len(theorems))
	for _, th := range theorems {
		result = append(result, th)
	}

	slices.SortFunc(result, func(a, b Theorem) int { return cmp.Compare(a.Code, b.Code) })

	return result
}

func entries(m map[string]string) []Entry {
	result := make([]Entry, 0, len(m))
	for code, meaning := range m {
		result = append(result, Entry{Code: code, Meaning: meaning})
	}

	slices.SortFunc(result, func(a, b Entry) int { return cmp.Compare(a.Code, b.Code) })

	return result
}
