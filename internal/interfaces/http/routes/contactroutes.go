package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/domain/permission"
	contactHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/contact"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
)

// ContactRouteConfig holds dependencies for inquiry routes.
type ContactRouteConfig struct {
	ContactHandler       *contactHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter // may be nil
}

// SetupContactRoutes configures the public inquiry form and the staff triage routes.
func SetupContactRoutes(engine gin.IRouter, cfg *ContactRouteConfig) {
	public := engine.Group("/contacts")
	if cfg.RateLimiter != nil {
		public.Use(cfg.RateLimiter.Limit())
	}
	{
		public.POST("", cfg.ContactHandler.SubmitInquiry)
		public.POST("/:id/receipt", cfg.ContactHandler.GetReceipt)
	}

	triage := engine.Group("/admin/contacts")
	triage.Use(cfg.AuthMiddleware.RequireStaff(), cfg.PermissionMiddleware.RequireCapability(permission.ResourceApprovals))
	{
		triage.GET("", cfg.ContactHandler.ListContacts)
		triage.GET("/:id", cfg.ContactHandler.GetContact)

		// state changes
		triage.PATCH("/:id/status", cfg.ContactHandler.ChangeStatus)
		triage.PATCH("/:id/priority", cfg.ContactHandler.ChangePriority)
		triage.POST("/:id/reopen", cfg.ContactHandler.Reopen)
		triage.PUT("/:id/assignee", cfg.ContactHandler.Assign)
		triage.PUT("/:id/response", cfg.ContactHandler.Respond)
	}
}
