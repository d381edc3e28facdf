package server

import (
	"net/http"
	"strconv"
)

// Page returns the items selected by the optional skip/limit pair. Nil
// means "not specified": with neither given the input is returned as-is,
// and a zero limit selects nothing.
func Page[T any](items []T, skip, limit *int) []T {
	if skip == nil && limit == nil {
		return items
	}

	start := 0
	if skip != nil && *skip > 0 {
		start = *skip
	}
	if start > len(items) {
		start = len(items)
	}

	end := len(items)
	if limit != nil {
		end = start + *limit
		if end < start {
			end = start
		}
		if end > len(items) {
			end = len(items)
		}
	}

	return items[start:end]
}

// parsePaging pulls the skip/limit query params off the request.
// Non-numeric values are dropped, not errored.
func parsePaging(r *http.Request) (skip, limit *int) {
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			skip = &n
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = &n
		}
	}

	return skip, limit
}
