package dto_test

import (
	"net/http/httptest"
	"testing"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "?page=2&limit=20&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortDir: dto.SortDirDesc},
		},
		{
			name:     "defaults",
			query:    "",
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortDir: dto.SortDirAsc},
		},
		{
			name:     "invalid values fall back",
			query:    "?page=-1&limit=abc&sort_dir=sideways",
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortDir: dto.SortDirAsc},
		},
		{
			name:     "zero page",
			query:    "?page=0&limit=5",
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: 5, SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := dto.QueryParams{}
			q.FromRequest(httptest.NewRequest("GET", "/v1/events"+tt.query, nil))

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		params     dto.QueryParams
		items      []int
		totalPages int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 2}, items: []int{1, 2}, totalPages: 3},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 2}, items: []int{5}, totalPages: 3},
		{name: "past the end", params: dto.QueryParams{Page: 9, Limit: 2}, items: []int{}, totalPages: 3},
		{name: "descending", params: dto.QueryParams{Page: 1, Limit: 2, SortDir: dto.SortDirDesc}, items: []int{5, 4}, totalPages: 3},
		{name: "defaults", params: dto.QueryParams{}, items: []int{1, 2, 3, 4, 5}, totalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := dto.Paginate(items, tt.params)

			assert.Equal(t, tt.items, page.Items)
			assert.Equal(t, 5, page.Pagination.Total)
			assert.Equal(t, tt.totalPages, page.Pagination.TotalPages)
		})
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}
