package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-backend/models"
	"tienda-backend/services"
)

// RateLimit rejects over-limit login attempts before the handler ever sees
// the credentials.
func RateLimit(limiter *services.LoginLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				OK:      false,
				Message: "Too many login attempts, please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
