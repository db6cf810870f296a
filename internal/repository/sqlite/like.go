package sqlite

import "strings"

// likePattern builds a case-insensitive substring match pattern, escaping the
// LIKE metacharacters in the user's query.
func likePattern(query string) string {
	q := strings.ToLower(query)
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, `%`, `\%`)
	q = strings.ReplaceAll(q, `_`, `\_`)
	return "%" + q + "%"
}
