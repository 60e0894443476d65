package query

import (
	"strings"

	"github.com/flyoffice/directory/internal/shared/constants"
)

// PageFilter is a 1-based page request. MaxSize bounds PageSize; zero means the
// package default.
type PageFilter struct {
	Page     int
	PageSize int
	MaxSize  int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	maxSize := f.MaxSize
	if maxSize <= 0 {
		maxSize = constants.MaxPageSize
	}
	if f.PageSize <= 0 {
		return min(constants.DefaultPageSize, maxSize)
	}
	return min(f.PageSize, maxSize)
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause renders "column ASC|DESC" when SortBy is in allowed, otherwise fallback.
func (f SortFilter) OrderClause(allowed map[string]bool, fallback string) string {
	column := strings.ToLower(f.SortBy)
	if column == "" || !allowed[column] {
		return fallback
	}
	if f.IsDescending() || f.SortOrder == "" {
		return column + " DESC"
	}
	return column + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}
