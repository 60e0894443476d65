package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreDeadline bounds the request context so store calls made for this
// request give up after d and surface as a store timeout.
func StoreDeadline(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
