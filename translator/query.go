package translator

import (
	"fmt"
	"strings"
)

const proofInquirySuffix = `\?`

var (
	notEqualReplacer = strings.NewReplacer("!=", " does not equal ", "≠", " does not equal ")

	comparisons = []struct {
		tokens   []string
		replacer *strings.Replacer
	}{
		{[]string{"!=", "≠"}, notEqualReplacer},
		{[]string{">=", "≥"}, strings.NewReplacer(">=", " is greater than or equal to ", "≥", " is greater than or equal to ")},
		{[]string{"<=", "≤"}, strings.NewReplacer("<=", " is less than or equal to ", "≤", " is less than or equal to ")},
	}
)

func isProofInquiry(stmt string) bool {
	return strings.HasSuffix(stmt, proofInquirySuffix)
}

func renderProofInquiry(stmt string) string {
	return fmt.Sprintf("Prove that %s.", strings.TrimSuffix(stmt, proofInquirySuffix))
}

func isQuery(stmt string) bool {
	return strings.HasSuffix(stmt, "?")
}

func isPropertyQuestion(stmt string) bool {
	return isQuery(stmt) && strings.Contains(stmt, "*")
}

func renderQuery(stmt string) string {
	return fmt.Sprintf("What is %s?", strings.TrimRight(stmt, "?"))
}

// renderPropertyQuestion asks OBJ*CODE? as a yes/no question. Several
// objects separated by ';' make it a relationship question.
func renderPropertyQuestion(stmt string) string {
	object, code, _ := strings.Cut(strings.TrimRight(stmt, "?"), "*")

	if strings.Contains(object, ";") {
		return fmt.Sprintf("Are %s %s?", joinObjects(object), relationshipOrProperty(code))
	}

	return fmt.Sprintf("Is %s %s?", object, propertyOrRelationship(code))
}

func hasComparison(stmt string) bool {
	for _, c := range comparisons {
		for _, token := range c.tokens {
			if strings.Contains(stmt, token) {
				return true
			}
		}
	}
	return false
}

// renderComparison substitutes the first operator family found.
func renderComparison(stmt string) string {
	for _, c := range comparisons {
		for _, token := range c.tokens {
			if strings.Contains(stmt, token) {
				return c.replacer.Replace(stmt)
			}
		}
	}
	return stmt
}
