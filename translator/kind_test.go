package translator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{`\p:S:AB`, KindProof},
		{`\q`, KindProofMarker},
		{"p&&q", KindConnective},
		{"∀x", KindQuantifier},
		{"S:AB<<(x;y)>>", KindCasework},
		{">>", KindCaseworkEnd},
		{`\?`, KindProofInquiry},
		{"CCO:ABC", KindDerived},
		{"G:{y=x}", KindGraph},
		{"P:A", KindPoint},
		{"S:AB", KindSegment},
		{"L:AB", KindLine},
		{"W:AB", KindRay},
		{"C:O;5", KindCircle},
		{"J:ABC", KindPolygon},
		{"R:3;AB=ABC", KindRegularPolygon},
		{"aAB=5", KindArc},
		{"qAB?", KindSector},
		{"[ABC]=20", KindArea},
		{"(ABC)?", KindPerimeter},
		{"<ABC=90", KindAngle},
		{"ABC*RT?", KindPropertyQuestion},
		{"AB?", KindQuery},
		{"AB>=CD", KindComparison},
		{"_PY", KindTheorem},
		{"AB=CD", KindLiteral},
		{"", KindLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "POINT", KindPoint.String())
	assert.Equal(t, "LITERAL", KindLiteral.String())
	assert.Equal(t, "UNKNOWN", Kind(-1).String())
}
