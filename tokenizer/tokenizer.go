// Package tokenizer scans geometry shorthand into typed glyph tokens.
//
// The scanner works on runes, so multi-byte glyphs such as ∠ or ≅ become a
// single token. The digraphs `\\` and `..` are recognized before their single
// character forms.
package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenIterator yields tokens up to and including EOF.
type TokenIterator iter.Seq[Token]

// Tokenizer is a tokenizer that returns an iterator
type Tokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
}

var punctuation = map[rune]TokenType{
	'/': SEPARATOR,
	':': COLON,
	';': SEMICOLON,
	',': COMMA,
	'|': PIPE,
	'*': STAR,
	'_': UNDERSCORE,
	'?': QUESTION,
	'=': EQUAL,
	'!': BANG,
	'+': PLUS,
	'-': MINUS,
	'<': LESS_THAN,
	'>': GREATER,
	'[': OPENED_BRACKET,
	']': CLOSED_BRACKET,
	'(': OPENED_PARENS,
	')': CLOSED_PARENS,
	'{': OPENED_BRACE,
	'}': CLOSED_BRACE,
	'~': GLYPH,
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer(input string, options ...TokenizerOptions) *Tokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	return &Tokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		s := &scanner{
			input: t.input,
			line:  1,
		}

		s.readChar()

		for {
			token := s.nextToken()

			if token.Type == EOF {
				yield(token)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, EOF included.
func (t *Tokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, len(t.input)+1)
	for token := range t.Tokens() {
		tokens = append(tokens, token)
	}
	return tokens
}

type scanner struct {
	input   string
	offset  int // byte offset of current
	next    int // byte offset after current
	line    int
	column  int
	current rune
	invalid bool
}

func (s *scanner) nextToken() Token {
	if s.atEOF() {
		return Token{Type: EOF, Position: s.position()}
	}

	start := s.position()

	switch {
	case s.invalid:
		return s.single(INVALID, start)
	case unicode.IsSpace(s.current):
		return s.readWhile(WHITESPACE, start, unicode.IsSpace)
	case s.current == '\\':
		if s.peekChar() == '\\' {
			return s.double(WRAPPER, start)
		}
		return s.single(BACKSLASH, start)
	case s.current == '.':
		if s.peekChar() == '.' {
			return s.double(DOUBLE_DOT, start)
		}
		return s.single(DOT, start)
	case '0' <= s.current && s.current <= '9':
		return s.readWhile(NUMBER, start, isDigit)
	case 'A' <= s.current && s.current <= 'Z':
		return s.single(UPPER, start)
	case 'a' <= s.current && s.current <= 'z':
		return s.single(LOWER, start)
	}

	if tokenType, ok := punctuation[s.current]; ok {
		return s.single(tokenType, start)
	}

	if s.current < utf8.RuneSelf {
		return s.single(OTHER, start)
	}

	return s.single(GLYPH, start)
}

// readChar reads the next character
func (s *scanner) readChar() {
	if s.current == '\n' {
		s.line++
		s.column = 0
	}
	s.column++
	s.offset = s.next

	if s.next >= len(s.input) {
		s.current = 0
		s.invalid = false
		return
	}

	r, width := utf8.DecodeRuneInString(s.input[s.next:])
	s.current = r
	s.invalid = r == utf8.RuneError && width == 1
	s.next += width
}

// peekChar looks ahead at the next character
func (s *scanner) peekChar() rune {
	if s.next >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.next:])
	return r
}

func (s *scanner) atEOF() bool {
	return s.offset >= len(s.input)
}

func (s *scanner) position() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func (s *scanner) single(tokenType TokenType, start Position) Token {
	value := s.input[s.offset:s.next]
	s.readChar()
	return Token{Type: tokenType, Value: value, Position: start}
}

func (s *scanner) double(tokenType TokenType, start Position) Token {
	s.readChar()
	value := s.input[start.Offset:s.next]
	s.readChar()
	return Token{Type: tokenType, Value: value, Position: start}
}

func (s *scanner) readWhile(tokenType TokenType, start Position, accept func(rune) bool) Token {
	var builder strings.Builder
	for !s.atEOF() && !s.invalid && accept(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}
	return Token{Type: tokenType, Value: builder.String(), Position: start}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
