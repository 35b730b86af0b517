package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	SortDir string `json:"sort_dir"`
}

// FromRequest reads page, limit and sort_dir from the query string. Missing or invalid
// values fall back to the first page, the default limit and ascending order.
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.Limit = constant.DefaultValueLimit
	q.SortDir = SortDirAsc

	if page, err := strconv.Atoi(queryParams.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(queryParams.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirDesc {
		q.SortDir = sortDir
	}
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Paginate cuts one page out of items, which must already be in ascending order.
func Paginate[T any](items []T, q QueryParams) Page[T] {
	if q.Page <= 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit <= 0 {
		q.Limit = constant.DefaultValueLimit
	}

	ordered := items
	if q.SortDir == SortDirDesc {
		ordered = slices.Clone(items)
		slices.Reverse(ordered)
	}

	total := len(ordered)
	start := min((q.Page-1)*q.Limit, total)
	end := min(start+q.Limit, total)

	page := make([]T, end-start)
	copy(page, ordered[start:end])

	return Page[T]{
		Items: page,
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: (total + q.Limit - 1) / q.Limit,
		},
	}
}
