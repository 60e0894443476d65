package routes

import (
	"github.com/gin-gonic/gin"

	airlineHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/airline"
	officeHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/office"
)

// DirectoryRouteConfig holds dependencies for the public directory routes.
type DirectoryRouteConfig struct {
	AirlineHandler *airlineHandlers.Handler
	OfficeHandler  *officeHandlers.Handler
}

// SetupDirectoryRoutes configures read-only airline and office routes.
// Staff tokens are honoured so editors can see inactive entries.
func SetupDirectoryRoutes(engine gin.IRouter, cfg *DirectoryRouteConfig) {
	airlines := engine.Group("/airlines")
	{
		airlines.GET("", cfg.AirlineHandler.ListAirlines)

		// literal segments
		airlines.GET("/search", cfg.AirlineHandler.SearchAirlines)
		airlines.GET("/slug/:slug", cfg.AirlineHandler.GetAirlineBySlug)

		airlines.GET("/:id", cfg.AirlineHandler.GetAirline)
		airlines.GET("/:id/offices", cfg.OfficeHandler.ListAirlineOffices)
		airlines.GET("/:id/offices/:city", cfg.OfficeHandler.GetOfficeByCity)
	}

	offices := engine.Group("/offices")
	{
		offices.GET("", cfg.OfficeHandler.ListOffices)
		offices.GET("/:id", cfg.OfficeHandler.GetOffice)
	}
}
