package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-backend/models"
	"tienda-backend/services"
)

const SessionCookieName = "session_id"

// RequireAuth resolves the session cookie and binds the admin identity to the
// request context. Product and configuration writes sit behind this; reads
// do not.
func RequireAuth(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				OK:      false,
				Message: "Unauthorized - Please log in",
			})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			log.Printf("session lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				OK:      false,
				Message: "Server error",
			})
			c.Abort()
			return
		}
		if session == nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				OK:      false,
				Message: "Unauthorized - Please log in",
			})
			c.Abort()
			return
		}

		c.Set("admin_id", session.AdminID)
		c.Set("username", session.Username)
		c.Next()
	}
}
