package models

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 50
)

type SearchRequest struct {
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=50"`
	Query    string `validate:"max=200"`
}

// Normalize applies defaults and clamps the request into its valid range.
// A zero Page or PageSize means "not provided".
func (r SearchRequest) Normalize() SearchRequest {
	out := SearchRequest{
		Page:     r.Page,
		PageSize: r.PageSize,
		Query:    strings.TrimSpace(r.Query),
	}

	if out.Page < 1 {
		out.Page = DefaultPage
	}

	switch {
	case r.PageSize == 0:
		out.PageSize = DefaultPageSize
	case r.PageSize < 1:
		out.PageSize = 1
	case r.PageSize > MaxPageSize:
		out.PageSize = MaxPageSize
	}

	return out
}

// ListResult is one page of tours. Total is a hint: it falls back to
// len(Items) when the provider omits it.
type ListResult struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Total    int64  `json:"total"`
	Items    []Tour `json:"items"`
}
