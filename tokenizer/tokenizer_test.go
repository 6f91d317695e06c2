package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	tokenizer := NewTokenizer("P:A,B/S:AB")

	expectedTypes := []TokenType{
		UPPER, COLON, UPPER, COMMA, UPPER, SEPARATOR, UPPER, COLON, UPPER, UPPER, EOF,
	}

	var actualTypes []TokenType
	for token := range tokenizer.Tokens() {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTokenIteratorWithOptions(t *testing.T) {
	tokenizer := NewTokenizer(" S : AB \n/ [ABC] = 20 ", TokenizerOptions{SkipWhitespace: true})

	expectedTypes := []TokenType{
		UPPER, COLON, UPPER, UPPER, SEPARATOR, OPENED_BRACKET, UPPER, UPPER, UPPER, CLOSED_BRACKET, EQUAL, NUMBER, EOF,
	}

	var actualTypes []TokenType
	for token := range tokenizer.Tokens() {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewTokenizer("P:A,B,C,D,E")

	count := 0
	for range tokenizer.Tokens() {
		count++

		if count >= 5 {
			break
		}
	}

	assert.Equal(t, 5, count)
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "wrapper digraph",
			input: `\\`,
			expected: []Token{
				{Type: WRAPPER, Value: `\\`, Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
		{
			name:  "wrapper before backslash",
			input: `\\\p`,
			expected: []Token{
				{Type: WRAPPER, Value: `\\`, Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: BACKSLASH, Value: `\`, Position: Position{Line: 1, Column: 3, Offset: 2}},
				{Type: LOWER, Value: "p", Position: Position{Line: 1, Column: 4, Offset: 3}},
			},
		},
		{
			name:  "double dot before dot",
			input: "...",
			expected: []Token{
				{Type: DOUBLE_DOT, Value: "..", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: DOT, Value: ".", Position: Position{Line: 1, Column: 3, Offset: 2}},
			},
		},
		{
			name:  "number run",
			input: "C:O;25",
			expected: []Token{
				{Type: UPPER, Value: "C", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: COLON, Value: ":", Position: Position{Line: 1, Column: 2, Offset: 1}},
				{Type: UPPER, Value: "O", Position: Position{Line: 1, Column: 3, Offset: 2}},
				{Type: SEMICOLON, Value: ";", Position: Position{Line: 1, Column: 4, Offset: 3}},
				{Type: NUMBER, Value: "25", Position: Position{Line: 1, Column: 5, Offset: 4}},
			},
		},
		{
			name:  "glyphs are single tokens",
			input: "∠A≅B",
			expected: []Token{
				{Type: GLYPH, Value: "∠", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: UPPER, Value: "A", Position: Position{Line: 1, Column: 2, Offset: 3}},
				{Type: GLYPH, Value: "≅", Position: Position{Line: 1, Column: 3, Offset: 4}},
				{Type: UPPER, Value: "B", Position: Position{Line: 1, Column: 4, Offset: 7}},
			},
		},
		{
			name:  "delimiters",
			input: "[(){}]",
			expected: []Token{
				{Type: OPENED_BRACKET, Value: "[", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: OPENED_PARENS, Value: "(", Position: Position{Line: 1, Column: 2, Offset: 1}},
				{Type: CLOSED_PARENS, Value: ")", Position: Position{Line: 1, Column: 3, Offset: 2}},
				{Type: OPENED_BRACE, Value: "{", Position: Position{Line: 1, Column: 4, Offset: 3}},
				{Type: CLOSED_BRACE, Value: "}", Position: Position{Line: 1, Column: 5, Offset: 4}},
				{Type: CLOSED_BRACKET, Value: "]", Position: Position{Line: 1, Column: 6, Offset: 5}},
			},
		},
		{
			name:  "tilde and other ascii",
			input: "~^",
			expected: []Token{
				{Type: GLYPH, Value: "~", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: OTHER, Value: "^", Position: Position{Line: 1, Column: 2, Offset: 1}},
			},
		},
		{
			name:  "invalid utf-8",
			input: "A\xffB",
			expected: []Token{
				{Type: UPPER, Value: "A", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: INVALID, Value: "\xff", Position: Position{Line: 1, Column: 2, Offset: 1}},
				{Type: UPPER, Value: "B", Position: Position{Line: 1, Column: 3, Offset: 2}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewTokenizer(tt.input).AllTokens()

			// Exclude EOF token
			assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
			assert.Equal(t, tt.expected, tokens[:len(tokens)-1])
		})
	}
}

func TestPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"/", SEPARATOR},
		{":", COLON},
		{";", SEMICOLON},
		{",", COMMA},
		{".", DOT},
		{"|", PIPE},
		{"*", STAR},
		{"_", UNDERSCORE},
		{"?", QUESTION},
		{"=", EQUAL},
		{"!", BANG},
		{"+", PLUS},
		{"-", MINUS},
		{"<", LESS_THAN},
		{">", GREATER},
		{"x", LOWER},
		{"Q", UPPER},
		{"∥", GLYPH},
		{"π", GLYPH},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewTokenizer(tt.input).AllTokens()
			assert.Equal(t, 2, len(tokens))
			assert.Equal(t, tt.expected, tokens[0].Type)
			assert.Equal(t, tt.input, tokens[0].Value)
		})
	}
}

func TestLineTracking(t *testing.T) {
	tokens := NewTokenizer("S:AB\n/ L:CD", TokenizerOptions{SkipWhitespace: true}).AllTokens()

	var separator, line Token
	for _, token := range tokens {
		switch {
		case token.Type == SEPARATOR:
			separator = token
		case token.Type == UPPER && token.Value == "L":
			line = token
		}
	}

	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 5}, separator.Position)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 7}, line.Position)
}

func TestWhitespaceToken(t *testing.T) {
	tokens := NewTokenizer("A \t\nB").AllTokens()

	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, WHITESPACE, tokens[1].Type)
	assert.Equal(t, " \t\n", tokens[1].Value)
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 4}, tokens[2].Position)
}

func TestEmptyInput(t *testing.T) {
	tokens := NewTokenizer("").AllTokens()
	assert.Equal(t, []Token{{Type: EOF, Position: Position{Line: 1, Column: 1, Offset: 0}}}, tokens)
}

func TestTokenString(t *testing.T) {
	token := Token{Type: DOUBLE_DOT, Value: ".."}
	assert.Equal(t, "DOUBLE_DOT: ..", token.String())
	assert.Equal(t, "UNKNOWN", TokenType(-1).String())
}

func TestCloser(t *testing.T) {
	assert.Equal(t, CLOSED_BRACKET, OPENED_BRACKET.Closer())
	assert.Equal(t, CLOSED_PARENS, OPENED_PARENS.Closer())
	assert.Equal(t, CLOSED_BRACE, OPENED_BRACE.Closer())
	assert.Equal(t, EOF, UPPER.Closer())
	assert.True(t, Token{Type: OPENED_BRACE}.IsOpening())
	assert.True(t, Token{Type: CLOSED_BRACKET}.IsClosing())
	assert.False(t, Token{Type: UPPER}.IsClosing())
}
