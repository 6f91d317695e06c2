package translator

import (
	"fmt"
	"strings"
)

// TranslateCasework enumerates the "(condition;consequence)" tuples of a
// casework block interior. Adjacent tuples are assumed to share a "),("
// boundary. Tuples that do not split into exactly two parts are dropped, but
// the remaining cases keep their input position as their number.
func TranslateCasework(interior string) string {
	clauses := strings.Split(interior, "),(")
	cases := make([]string, 0, len(clauses))

	for i, clause := range clauses {
		clause = strings.Trim(clause, "()")

		parts := strings.Split(clause, ";")
		if len(parts) != 2 {
			continue
		}

		cases = append(cases, fmt.Sprintf("Case %d: if %s, then %s", i+1, parts[0], parts[1]))
	}

	return strings.Join(cases, "; ")
}
