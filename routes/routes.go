package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tienda-backend/config"
	"tienda-backend/controllers"
	"tienda-backend/middleware"
	"tienda-backend/repositories"
	"tienda-backend/services"
)

func SetupRoutes(router *gin.Engine) {
	sessions := services.NewSessionStore(config.RedisClient)
	limiter := services.NewLoginLimiter(config.RedisClient)

	authCtrl := controllers.NewAuthController(
		services.NewAuthService(repositories.NewAdminRepository(), sessions))
	productCtrl := controllers.NewProductController(
		services.NewProductService(repositories.NewProductRepository()))
	configCtrl := controllers.NewConfigurationController(
		services.NewConfigurationService(repositories.NewConfigurationRepository()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/admin/login",
		middleware.RateLimit(limiter), middleware.SanitizeBody(), authCtrl.Login)
	api.POST("/admin/logout", authCtrl.Logout)
	api.GET("/admin/me", middleware.RequireAuth(sessions), authCtrl.Me)

	api.GET("/products", productCtrl.GetAllProducts)
	api.GET("/products/:id", productCtrl.GetProductByID)
	api.GET("/configuration", configCtrl.GetConfiguration)

	admin := api.Group("/")
	admin.Use(middleware.RequireAuth(sessions), middleware.SanitizeBody())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/configuration", configCtrl.SetConfiguration)
	}
}
