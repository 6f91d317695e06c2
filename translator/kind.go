package translator

// Kind is the syntactic category the classifier assigns to a statement.
type Kind int

const (
	KindLiteral Kind = iota // no rule matched; echoed unchanged

	// Proof structure
	KindProof        // \p: and \pC: wrappers
	KindProofMarker  // \q, \qC, \bc, \th and their glyphs
	KindConnective   // ||, &&, => and their glyphs
	KindQuantifier   // |A, |E, ∀, ∃
	KindCasework     // head<<(c;q),...>>
	KindCaseworkEnd  // >>
	KindProofInquiry // X\?

	// Constructions
	KindDerived        // CCO:ABC and the other derived prefixes
	KindGraph          // G:
	KindPoint          // P:
	KindSegment        // S:
	KindLine           // L:
	KindRay            // W:
	KindCircle         // C:
	KindPolygon        // J:
	KindRegularPolygon // R:

	// Measures
	KindArc       // aAB=5, aAB?
	KindSector    // qAB=5, qAB?
	KindArea      // [ABC]=5, [ABC]?
	KindPerimeter // (ABC)=5, (ABC)?
	KindAngle     // <ABC=90, ∠ABC?

	// Questions and relations
	KindPropertyQuestion // ABC*RT?
	KindQuery            // AB?
	KindComparison       // !=, >=, <= and their glyphs
	KindTheorem          // _PY
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "LITERAL"
	case KindProof:
		return "PROOF"
	case KindProofMarker:
		return "PROOF_MARKER"
	case KindConnective:
		return "CONNECTIVE"
	case KindQuantifier:
		return "QUANTIFIER"
	case KindCasework:
		return "CASEWORK"
	case KindCaseworkEnd:
		return "CASEWORK_END"
	case KindProofInquiry:
		return "PROOF_INQUIRY"
	case KindDerived:
		return "DERIVED"
	case KindGraph:
		return "GRAPH"
	case KindPoint:
		return "POINT"
	case KindSegment:
		return "SEGMENT"
	case KindLine:
		return "LINE"
	case KindRay:
		return "RAY"
	case KindCircle:
		return "CIRCLE"
	case KindPolygon:
		return "POLYGON"
	case KindRegularPolygon:
		return "REGULAR_POLYGON"
	case KindArc:
		return "ARC"
	case KindSector:
		return "SECTOR"
	case KindArea:
		return "AREA"
	case KindPerimeter:
		return "PERIMETER"
	case KindAngle:
		return "ANGLE"
	case KindPropertyQuestion:
		return "PROPERTY_QUESTION"
	case KindQuery:
		return "QUERY"
	case KindComparison:
		return "COMPARISON"
	case KindTheorem:
		return "THEOREM"
	default:
		return "UNKNOWN"
	}
}
