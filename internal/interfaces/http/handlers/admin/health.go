package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/utils"
	"github.com/flyoffice/directory/internal/shared/version"
)

// Pinger checks that a backing store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	logger logger.Interface
}

func NewHealthHandler(store Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", version.Get())
}
