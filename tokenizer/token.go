package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	INVALID // a byte that is not valid UTF-8

	// Structure
	WRAPPER    // \\ around a whole problem
	BACKSLASH  // \ before proof keywords such as \p: and \q
	SEPARATOR  // /
	COLON      // :
	SEMICOLON  // ;
	COMMA      // ,
	DOT        // .
	DOUBLE_DOT // ..
	PIPE       // |
	STAR       // *
	UNDERSCORE // _
	QUESTION   // ?
	EQUAL      // =
	BANG       // !
	PLUS       // +
	MINUS      // -
	LESS_THAN  // <
	GREATER    // >

	// Delimiters
	OPENED_BRACKET // [
	CLOSED_BRACKET // ]
	OPENED_PARENS  // (
	CLOSED_PARENS  // )
	OPENED_BRACE   // {
	CLOSED_BRACE   // }

	// Names and values
	UPPER  // point names A-Z
	LOWER  // role letters a-z
	NUMBER // run of ASCII digits

	// Others
	GLYPH // non-ASCII symbols such as ∥ ⊥ ∠ ≅ π, and ~
	OTHER // any other ASCII character
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case INVALID:
		return "INVALID"
	case WRAPPER:
		return "WRAPPER"
	case BACKSLASH:
		return "BACKSLASH"
	case SEPARATOR:
		return "SEPARATOR"
	case COLON:
		return "COLON"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case DOUBLE_DOT:
		return "DOUBLE_DOT"
	case PIPE:
		return "PIPE"
	case STAR:
		return "STAR"
	case UNDERSCORE:
		return "UNDERSCORE"
	case QUESTION:
		return "QUESTION"
	case EQUAL:
		return "EQUAL"
	case BANG:
		return "BANG"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case LESS_THAN:
		return "LESS_THAN"
	case GREATER:
		return "GREATER"
	case OPENED_BRACKET:
		return "OPENED_BRACKET"
	case CLOSED_BRACKET:
		return "CLOSED_BRACKET"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case OPENED_BRACE:
		return "OPENED_BRACE"
	case CLOSED_BRACE:
		return "CLOSED_BRACE"
	case UPPER:
		return "UPPER"
	case LOWER:
		return "LOWER"
	case NUMBER:
		return "NUMBER"
	case GLYPH:
		return "GLYPH"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source text. Column counts runes,
// Offset counts bytes.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// IsOpening reports whether the token opens a delimited group.
func (t Token) IsOpening() bool {
	return t.Type == OPENED_BRACKET || t.Type == OPENED_PARENS || t.Type == OPENED_BRACE
}

// IsClosing reports whether the token closes a delimited group.
func (t Token) IsClosing() bool {
	return t.Type == CLOSED_BRACKET || t.Type == CLOSED_PARENS || t.Type == CLOSED_BRACE
}

// Closer returns the token type that closes an opening delimiter, or EOF.
func (t TokenType) Closer() TokenType {
	switch t {
	case OPENED_BRACKET:
		return CLOSED_BRACKET
	case OPENED_PARENS:
		return CLOSED_PARENS
	case OPENED_BRACE:
		return CLOSED_BRACE
	default:
		return EOF
	}
}
