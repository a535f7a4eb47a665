package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tienda-backend/config"
	_ "tienda-backend/docs"
	"tienda-backend/middleware"
	"tienda-backend/models"
	"tienda-backend/routes"
)

// @title Tienda Backend API
// @version 1.0
// @description Storefront catalog, admin panel and configuration API with WhatsApp checkout handoff.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := config.SeedAdmin(); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	models.RegisterValidators()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
