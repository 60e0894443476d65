package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/infrastructure/auth"
	"github.com/flyoffice/directory/internal/infrastructure/config"
	"github.com/flyoffice/directory/internal/infrastructure/metrics"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and releases what it opened in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Services shared by several use cases
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	contactRateLimiter   *middleware.RateLimiter

	jwtSvc  *auth.JWTService
	metrics *metrics.Recorder
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, metrics, repositories
	c.initInfrastructure()

	// Section 2: Services - permissions, markdown, notifier, directory
	c.initServices()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c
}

// Shutdown releases connections opened by the container. The database handle
// belongs to the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
