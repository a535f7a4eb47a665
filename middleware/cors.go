package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tienda-backend/config"
)

// CORSMiddleware only echoes allow-listed origins; everyone else gets no
// Access-Control-Allow-Origin header at all.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigins := []string{
		"http://localhost:5000",
		"http://127.0.0.1:5000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}

	if config.AppConfig.AllowedOrigins != "" {
		for _, origin := range strings.Split(config.AppConfig.AllowedOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
