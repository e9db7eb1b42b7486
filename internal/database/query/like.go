// Package query holds SQL fragments shared by the repositories.
package query

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold returns a WHERE fragment matching column case-insensitively
// against a Pattern argument.
func ContainsFold(column string) string {
	return "LOWER(" + column + ") LIKE LOWER(?) ESCAPE '\\'"
}

// Pattern wraps s for a substring LIKE match, escaping wildcards so they
// match literally. An empty s matches everything.
func Pattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
