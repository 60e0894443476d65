package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/infrastructure/auth"
	"github.com/flyoffice/directory/internal/shared/constants"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/utils"
)

// TokenVerifier checks a bearer token issued by the identity service.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// IdentifyRole stores the caller's role and staff id when a bearer token is
// present. No token means the public role (empty); a bad token is refused.
func (m *AuthMiddleware) IdentifyRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.Subject())
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// CallerRole returns the role set by IdentifyRole, empty for public callers.
func CallerRole(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserRole)
}

// CallerID returns the staff id from the token subject.
func CallerID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserID)
}

// RequireStaff refuses callers without a verified token.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerID(c) == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
