package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shibukawa/gslc/symbols"
	"github.com/shibukawa/gslc/tokenizer"
)

var (
	primitivePrefixes = []string{"P", "S", "L", "W", "C", "J", "R", "G"}
	fullTurn          = decimal.NewFromInt(360)
)

func checkStatement(stmt []tokenizer.Token) []Warning {
	stmt = cutProofPrefixes(stmt)
	if len(stmt) == 0 {
		return nil
	}

	var warnings []Warning

	if w, ok := checkPrefix(stmt); ok {
		warnings = append(warnings, w)
	}

	if w, ok := checkTheorem(stmt); ok {
		warnings = append(warnings, w)
	}

	if w, ok := checkAngle(stmt); ok {
		warnings = append(warnings, w)
	}

	warnings = append(warnings, checkNumbers(stmt)...)
	warnings = append(warnings, checkCodes(stmt)...)

	return warnings
}

// cutProofPrefixes drops leading \p: and \pC: markers.
func cutProofPrefixes(stmt []tokenizer.Token) []tokenizer.Token {
	for len(stmt) >= 3 && stmt[0].Type == tokenizer.BACKSLASH && stmt[1].Value == "p" {
		switch {
		case stmt[2].Type == tokenizer.COLON:
			stmt = stmt[3:]
		case len(stmt) >= 4 && stmt[2].Value == "C" && stmt[3].Type == tokenizer.COLON:
			stmt = stmt[4:]
		default:
			return stmt
		}
	}

	return stmt
}

func join(tokens []tokenizer.Token) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.Value)
	}
	return b.String()
}

func isName(token tokenizer.Token) bool {
	return token.Type == tokenizer.UPPER || token.Type == tokenizer.NUMBER
}

// checkPrefix flags NAME: heads that are neither primitive nor derived
// constructions.
func checkPrefix(stmt []tokenizer.Token) (Warning, bool) {
	end := 0
	for end < len(stmt) && end < 3 && isName(stmt[end]) {
		end++
	}

	if end == 0 || end >= len(stmt) || stmt[end].Type != tokenizer.COLON {
		return Warning{}, false
	}

	prefix := join(stmt[:end])
	for _, p := range primitivePrefixes {
		if p == prefix {
			return Warning{}, false
		}
	}

	if _, ok := symbols.DerivedConstruction(prefix); ok {
		return Warning{}, false
	}

	return Warning{
		Pos:     stmt[0].Position,
		Code:    CodeUnknownPrefix,
		Message: fmt.Sprintf("unknown construction %q", prefix+":"),
	}, true
}

func checkTheorem(stmt []tokenizer.Token) (Warning, bool) {
	if stmt[0].Type != tokenizer.UNDERSCORE || len(stmt) == 1 {
		return Warning{}, false
	}

	for _, token := range stmt[1:] {
		if !isName(token) {
			return Warning{}, false
		}
	}

	code := join(stmt)
	if _, ok := symbols.LookupTheorem(code); ok {
		return Warning{}, false
	}

	return Warning{
		Pos:     stmt[0].Position,
		Code:    CodeUnknownTheorem,
		Message: fmt.Sprintf("unknown theorem %q", code),
	}, true
}

// checkAngle flags angle and arc measures outside (0, 360].
func checkAngle(stmt []tokenizer.Token) (Warning, bool) {
	head := stmt[0]
	isAngle := head.Value == "∠" || (head.Type == tokenizer.LESS_THAN && (len(stmt) == 1 || stmt[1].Type != tokenizer.EQUAL))
	if !isAngle {
		return Warning{}, false
	}

	for i, token := range stmt {
		if token.Type != tokenizer.EQUAL || i+1 == len(stmt) {
			continue
		}

		value, err := decimal.NewFromString(join(stmt[i+1:]))
		if err != nil {
			return Warning{}, false
		}

		if value.LessThanOrEqual(decimal.Zero) || value.GreaterThan(fullTurn) {
			return Warning{
				Pos:     stmt[i+1].Position,
				Code:    CodeAngleRange,
				Message: fmt.Sprintf("measure %s is outside (0, 360] degrees", value),
			}, true
		}

		return Warning{}, false
	}

	return Warning{}, false
}

// checkNumbers flags dotted digit runs such as 3.1.4 that are not decimals.
func checkNumbers(stmt []tokenizer.Token) []Warning {
	var warnings []Warning

	for i := 0; i < len(stmt); i++ {
		if stmt[i].Type != tokenizer.NUMBER {
			continue
		}

		j := i
		for j+2 < len(stmt) && stmt[j+1].Type == tokenizer.DOT && stmt[j+2].Type == tokenizer.NUMBER {
			j += 2
		}

		if j == i {
			continue
		}

		literal := join(stmt[i : j+1])
		if _, err := decimal.NewFromString(literal); err != nil {
			warnings = append(warnings, Warning{
				Pos:     stmt[i].Position,
				Code:    CodeInvalidNumber,
				Message: fmt.Sprintf("%q is not a number", literal),
			})
		}

		i = j
	}

	return warnings
}

// checkCodes flags star codes that name no known property or relationship.
func checkCodes(stmt []tokenizer.Token) []Warning {
	var warnings []Warning

	for i, token := range stmt {
		if token.Type != tokenizer.STAR || i+1 == len(stmt) {
			continue
		}

		rest := stmt[i+1:]

		var code string
		switch {
		case rest[0].Type == tokenizer.GLYPH:
			code = rest[0].Value
		case isName(rest[0]):
			end := 0
			for end < len(rest) && isName(rest[end]) {
				end++
			}
			code = join(rest[:end])
		default:
			continue
		}

		_, isProperty := symbols.Property(code)
		_, isRelationship := symbols.Relationship(code)
		if isProperty || isRelationship {
			continue
		}

		warnings = append(warnings, Warning{
			Pos:     rest[0].Position,
			Code:    CodeUnknownCode,
			Message: fmt.Sprintf("unknown property or relationship %q", code),
		})
	}

	return warnings
}
