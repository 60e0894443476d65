package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	permissionApp "github.com/flyoffice/directory/internal/application/permission"
	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/shared/utils"
)

// PermissionQuerier answers dashboard questions about the caller's role.
type PermissionQuerier interface {
	Resolve(role string) permission.CapabilitySet
	Sections(role string) []permissionApp.Section
	Matrix() []permissionApp.RoleCapabilities
}

type Handler struct {
	permissions PermissionQuerier
}

func NewHandler(permissions PermissionQuerier) *Handler {
	return &Handler{permissions: permissions}
}

type capabilitiesResponse struct {
	Role         string                   `json:"role"`
	Capabilities permission.CapabilitySet `json:"capabilities"`
}

// GetNavigation handles GET /admin/navigation
func (h *Handler) GetNavigation(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.permissions.Sections(middleware.CallerRole(c)))
}

// GetCapabilities handles GET /admin/capabilities
func (h *Handler) GetCapabilities(c *gin.Context) {
	role := middleware.CallerRole(c)
	utils.SuccessResponse(c, http.StatusOK, "", capabilitiesResponse{
		Role:         role,
		Capabilities: h.permissions.Resolve(role),
	})
}

// ListRoles handles GET /admin/roles
func (h *Handler) ListRoles(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.permissions.Matrix())
}
