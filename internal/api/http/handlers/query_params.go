package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ozzus/tours-gateway/internal/domain/models"
)

// parseIntQuery reads an integer query parameter. Missing or non-numeric
// values report present=false so the caller falls back to its default.
func parseIntQuery(r *http.Request, key string) (value int, present bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// parseSearchRequest reads page, pageSize and query. Range clamping is left to
// models.SearchRequest.Normalize.
func parseSearchRequest(r *http.Request) models.SearchRequest {
	var req models.SearchRequest

	if page, ok := parseIntQuery(r, "page"); ok {
		req.Page = page
	}
	if pageSize, ok := parseIntQuery(r, "pageSize"); ok {
		// an explicit 0 is a request for the smallest page, not the default
		if pageSize == 0 {
			pageSize = 1
		}
		req.PageSize = pageSize
	}
	req.Query = strings.TrimSpace(r.URL.Query().Get("query"))

	return req
}
