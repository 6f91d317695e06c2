package validator

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/gslc/tokenizer"
)

var (
	opening    = primitive("opening", tokenizer.Token.IsOpening)
	closing    = primitive("closing", tokenizer.Token.IsClosing)
	delimiters = pc.Or(opening, closing)
)

func primitive(name string, accept func(tokenizer.Token) bool) pc.Parser[tokenizer.Token] {
	return func(pctx *pc.ParseContext[tokenizer.Token], tokens []pc.Token[tokenizer.Token]) (int, []pc.Token[tokenizer.Token], error) {
		if len(tokens) > 0 && accept(tokens[0].Val) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func toParserTokens(tokens []tokenizer.Token) []pc.Token[tokenizer.Token] {
	results := make([]pc.Token[tokenizer.Token], 0, len(tokens))

	for _, token := range tokens {
		if token.Type == tokenizer.EOF {
			continue
		}

		results = append(results, pc.Token[tokenizer.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		})
	}

	return results
}

// checkDelimiters matches [], () and {} with a stack. Casework markers are
// not checked because a block may be closed by a later statement.
func checkDelimiters(tokens []tokenizer.Token) []Warning {
	pctx := pc.NewParseContext[tokenizer.Token]()

	var (
		warnings []Warning
		stack    []tokenizer.Token
	)

	for _, part := range pc.FindIter(pctx, delimiters, toParserTokens(tokens)) {
		if part.Last || len(part.Match) == 0 {
			break
		}

		token := part.Match[0].Val
		if token.IsOpening() {
			stack = append(stack, token)
			continue
		}

		if len(stack) == 0 {
			warnings = append(warnings, Warning{
				Pos:     token.Position,
				Code:    CodeUnbalanced,
				Message: fmt.Sprintf("unexpected %q", token.Value),
			})
			continue
		}

		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if open.Type.Closer() != token.Type {
			warnings = append(warnings, Warning{
				Pos:     token.Position,
				Code:    CodeUnbalanced,
				Message: fmt.Sprintf("%q opened at %d:%d is closed by %q", open.Value, open.Position.Line, open.Position.Column, token.Value),
			})
		}
	}

	for _, open := range stack {
		warnings = append(warnings, Warning{
			Pos:     open.Position,
			Code:    CodeUnbalanced,
			Message: fmt.Sprintf("%q is never closed", open.Value),
		})
	}

	return warnings
}
