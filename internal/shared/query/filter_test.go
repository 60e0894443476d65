package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_OffsetAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		filter     PageFilter
		wantOffset int
		wantLimit  int
	}{
		{"first page", PageFilter{Page: 1, PageSize: 10}, 0, 10},
		{"third page", PageFilter{Page: 3, PageSize: 10}, 20, 10},
		{"default size", PageFilter{Page: 1}, 0, 20},
		{"clamped to package max", PageFilter{Page: 2, PageSize: 1000}, 100, 100},
		{"clamped to explicit max", PageFilter{Page: 2, PageSize: 60, MaxSize: 50}, 50, 50},
		{"zero page", PageFilter{PageSize: 5}, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.filter.Offset())
			assert.Equal(t, tt.wantLimit, tt.filter.Limit())
		})
	}
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "name": true}
	fallback := "created_at DESC"

	assert.Equal(t, fallback, SortFilter{}.OrderClause(allowed, fallback))
	assert.Equal(t, "name ASC", SortFilter{SortBy: "name", SortOrder: "asc"}.OrderClause(allowed, fallback))
	assert.Equal(t, "name DESC", SortFilter{SortBy: "NAME"}.OrderClause(allowed, fallback))
	assert.Equal(t, fallback, SortFilter{SortBy: "name; drop table", SortOrder: "asc"}.OrderClause(allowed, fallback))
}
