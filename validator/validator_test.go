package validator

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/gslc/tokenizer"
)

func TestValidateClean(t *testing.T) {
	inputs := []string{
		"P:A,B/S:AB",
		`\\P:A,B,C/J:ABC/R:3;AB=ABC\\`,
		"<<(x;y),(z;w)>>",
		"S:AB<<(AB=CD;x)",
		"CCO:ABC/9O:ABC/EAB:ABC",
		`\p:\pC:S:AB`,
		"C:O;2.5",
		"<ABC=90/∠DEF=360/<aAB=60",
		"AB<=CD",
		"_PY/_SSS",
		"ABC*RT/AB;CD*P/ABC*+/AB;CD*∥/ABC*RT?",
		"P:A|{1,2}",
		"[ABC]=2π",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, 0, len(Validate(input)))
			assert.NoError(t, Check(input))
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     string
		position tokenizer.Position
	}{
		{"unclosed bracket", "[ABC=20", CodeUnbalanced, tokenizer.Position{Line: 1, Column: 1, Offset: 0}},
		{"unexpected closer", "ABC]", CodeUnbalanced, tokenizer.Position{Line: 1, Column: 4, Offset: 3}},
		{"mismatched closer", "[ABC)", CodeUnbalanced, tokenizer.Position{Line: 1, Column: 5, Offset: 4}},
		{"unclosed brace", "P:A{1,2", CodeUnbalanced, tokenizer.Position{Line: 1, Column: 4, Offset: 3}},
		{"unknown prefix", "X:ABC", CodeUnknownPrefix, tokenizer.Position{Line: 1, Column: 1, Offset: 0}},
		{"unknown prefix after proof", `\p:Q:AB`, CodeUnknownPrefix, tokenizer.Position{Line: 1, Column: 4, Offset: 3}},
		{"malformed radius", "C:O;3.1.4", CodeInvalidNumber, tokenizer.Position{Line: 1, Column: 5, Offset: 4}},
		{"angle too large", "<ABC=400", CodeAngleRange, tokenizer.Position{Line: 1, Column: 6, Offset: 5}},
		{"negative angle", "<ABC=-5", CodeAngleRange, tokenizer.Position{Line: 1, Column: 6, Offset: 5}},
		{"unknown theorem", "_ZZ", CodeUnknownTheorem, tokenizer.Position{Line: 1, Column: 1, Offset: 0}},
		{"unknown code", "ABC*QQ?", CodeUnknownCode, tokenizer.Position{Line: 1, Column: 5, Offset: 4}},
		{"invalid utf-8", "A\xffB", CodeInvalidUTF8, tokenizer.Position{Line: 1, Column: 2, Offset: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := Validate(tt.input)
			assert.Equal(t, 1, len(warnings), "%v", warnings)
			assert.Equal(t, tt.code, warnings[0].Code)
			assert.Equal(t, tt.position, warnings[0].Pos)
		})
	}
}

func TestValidateOrdersByPosition(t *testing.T) {
	warnings := Validate("X:A/[B/_ZZ")

	codes := make([]string, len(warnings))
	for i, w := range warnings {
		codes[i] = w.Code
	}

	assert.Equal(t, []string{CodeUnknownPrefix, CodeUnbalanced, CodeUnknownTheorem}, codes)
}

func TestValidateSecondLine(t *testing.T) {
	warnings := Validate("S:AB/\nX:CD")

	assert.Equal(t, 1, len(warnings))
	assert.Equal(t, tokenizer.Position{Line: 2, Column: 1, Offset: 6}, warnings[0].Pos)
}

func TestCheck(t *testing.T) {
	err := Check("[ABC")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Contains(t, err.Error(), "1 warning(s)")
}

func TestWarningString(t *testing.T) {
	w := Warning{
		Pos:     tokenizer.Position{Line: 2, Column: 7, Offset: 12},
		Code:    CodeUnknownPrefix,
		Message: `unknown construction "X:"`,
	}

	assert.Equal(t, `2:7: unknown-prefix: unknown construction "X:"`, w.String())
}
