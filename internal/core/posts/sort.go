package posts

// sortClauses whitelists the ORDER BY clause per sort token. A map lookup
// keeps user input out of the SQL entirely (defense-in-depth against
// injection via dynamic ORDER BY).
//
// The ranking scores (hot_algo, vote_ratio, controversial_algo) are
// precomputed by the vote pipeline; sorting only reads them.
var sortClauses = map[string]string{
	"new":           "p.created_at DESC",
	"old":           "p.created_at ASC",
	"top":           "p.points_count DESC",
	"best":          "p.vote_ratio DESC",
	"hot":           "p.hot_algo DESC",
	"controversial": "p.controversial_algo DESC",
}

// SortClause maps a sortby token to its ORDER BY clause. Unrecognized or
// absent tokens yield the empty string: natural storage order, no explicit
// sort.
func SortClause(token string) string {
	return sortClauses[token]
}
