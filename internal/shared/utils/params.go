package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/id"
)

// ParseIDParam reads a prefixed ID from a URL path parameter.
// entityName is used in error messages (e.g., "airline", "office").
func ParseIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if !id.HasPrefix(sid, prefix) {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}
