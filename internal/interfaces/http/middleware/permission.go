package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/shared/utils"
)

// CapabilityChecker refuses roles that lack a capability.
type CapabilityChecker interface {
	Require(role string, resource permission.Resource) error
}

type PermissionMiddleware struct {
	checker CapabilityChecker
}

func NewPermissionMiddleware(checker CapabilityChecker) *PermissionMiddleware {
	return &PermissionMiddleware{checker: checker}
}

// RequireCapability aborts with 403 unless the caller's role grants resource.
// Handlers behind it do not check again.
func (m *PermissionMiddleware) RequireCapability(resource permission.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.checker.Require(CallerRole(c), resource); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
