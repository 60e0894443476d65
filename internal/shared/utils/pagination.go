package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/shared/constants"
	"github.com/flyoffice/directory/internal/shared/errors"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string. Missing
// values take the defaults; out-of-range numbers are passed through so the
// directory can reject them with field errors.
func ParsePagination(c *gin.Context, defaultPageSize int) (Pagination, error) {
	if defaultPageSize <= 0 {
		defaultPageSize = constants.DefaultPageSize
	}

	var fields errors.FieldErrors
	page := parseQueryInt(c, "page", constants.DefaultPage, &fields)
	pageSize := parseQueryInt(c, "page_size", defaultPageSize, &fields)
	if err := fields.Err(); err != nil {
		return Pagination{}, err
	}
	return Pagination{Page: page, PageSize: pageSize}, nil
}

// EffectivePageSize is the page size actually served after clamping.
func EffectivePageSize(pageSize, maxPageSize int) int {
	if maxPageSize <= 0 {
		maxPageSize = constants.MaxPageSize
	}
	return min(pageSize, maxPageSize)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int, fields *errors.FieldErrors) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		fields.Add(key, "must be an integer")
		return defaultVal
	}
	return n
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
