package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/domain/permission"
	adminHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/admin"
	airlineHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/airline"
	officeHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/office"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for dashboard routes.
type AdminRouteConfig struct {
	AdminHandler         *adminHandlers.Handler
	AirlineHandler       *airlineHandlers.Handler
	OfficeHandler        *officeHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures staff-only routes.
func SetupAdminRoutes(engine gin.IRouter, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireStaff())
	{
		admin.GET("/navigation", cfg.AdminHandler.GetNavigation)
		admin.GET("/capabilities", cfg.AdminHandler.GetCapabilities)
		admin.GET("/roles", cfg.PermissionMiddleware.RequireCapability(permission.ResourceUsers), cfg.AdminHandler.ListRoles)
	}

	airlines := admin.Group("/airlines")
	airlines.Use(cfg.PermissionMiddleware.RequireCapability(permission.ResourceOffices))
	{
		airlines.POST("", cfg.AirlineHandler.CreateAirline)
		airlines.PATCH("/:id", cfg.AirlineHandler.UpdateAirline)
		airlines.PUT("/:id/name", cfg.AirlineHandler.RenameAirline)
		airlines.POST("/:id/activate", cfg.AirlineHandler.ActivateAirline)
		airlines.POST("/:id/deactivate", cfg.AirlineHandler.DeactivateAirline)
	}

	offices := admin.Group("/offices")
	offices.Use(cfg.PermissionMiddleware.RequireCapability(permission.ResourceOffices))
	{
		offices.POST("", cfg.OfficeHandler.CreateOffice)
		offices.PATCH("/:id", cfg.OfficeHandler.UpdateOffice)
		offices.DELETE("/:id", cfg.OfficeHandler.DeleteOffice)
	}
}
