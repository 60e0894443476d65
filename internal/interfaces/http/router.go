package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/infrastructure/config"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/interfaces/http/routes"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(db, cfg, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.metrics.Middleware())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	// Everything below talks to the store under one per-request deadline.
	api := r.engine.Group("")
	api.Use(middleware.StoreDeadline(cfg.Database.QueryTimeout()), r.authMiddleware.IdentifyRole())

	routes.SetupDirectoryRoutes(api, &routes.DirectoryRouteConfig{
		AirlineHandler: r.hdlrs.airlineHandler,
		OfficeHandler:  r.hdlrs.officeHandler,
	})

	routes.SetupContactRoutes(api, &routes.ContactRouteConfig{
		ContactHandler:       r.hdlrs.contactHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.contactRateLimiter,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:         r.hdlrs.adminHandler,
		AirlineHandler:       r.hdlrs.airlineHandler,
		OfficeHandler:        r.hdlrs.officeHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
