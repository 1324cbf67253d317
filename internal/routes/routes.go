package routes

import (
	"net/http"

	_ "immo_backend/docs"
	"immo_backend/internal/handlers"
	"immo_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Весь /api/v1 закрыт authMiddleware; служебные маршруты открыты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
	metricsHandler http.Handler,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	if metricsHandler != nil {
		ginRouter.GET("/metrics", gin.WrapH(metricsHandler))
	}
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	api.Use(authMiddleware)
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.PropertyHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
		appHandlers.FavoriteHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}
	logger.Debug("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
