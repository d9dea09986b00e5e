package post

import (
	"net/http"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 25
)

// parsePageLimit reads the page and limit query parameters, applying
// defaults when absent. Non-numeric or non-positive values are rejected.
func parsePageLimit(r *http.Request) (page, limit int, ok bool) {
	page, ok = parsePositiveInt(r.URL.Query().Get("page"), defaultPage)
	if !ok {
		return 0, 0, false
	}

	limit, ok = parsePositiveInt(r.URL.Query().Get("limit"), defaultLimit)
	if !ok {
		return 0, 0, false
	}

	return page, limit, true
}

func parsePositiveInt(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
