package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/config"
	"github.com/standupshop/backend/internal/http/handlers"
	"github.com/standupshop/backend/internal/http/middleware"
	"github.com/standupshop/backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	orderHandler *handlers.OrderHandler,
	showHandler *handlers.ShowHandler,
	presaleHandler *handlers.PresaleHandler,
	fanCardHandler *handlers.FanCardHandler,
	chatHandler *handlers.ChatHandler,
	settingsHandler *handlers.SettingsHandler,
	mediaHandler *handlers.MediaHandler,
	wsHandler *handlers.WSHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	healthHandler *handlers.HealthHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed/admin", seedHandler.SeedAdmin)
	}

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Публичные маршруты витрины
	publicRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	api.POST("/orders", publicRateLimit, orderHandler.CreateOrder)
	api.GET("/orders/track", orderHandler.TrackOrder)
	api.GET("/shows", showHandler.ListShows)
	api.POST("/presale-requests", publicRateLimit, presaleHandler.CreateRequest)
	api.POST("/fan-cards", publicRateLimit, fanCardHandler.CreateCard)
	api.POST("/chat/messages", publicRateLimit, chatHandler.PostMessage)
	api.GET("/chat/messages", chatHandler.ListMessages)
	api.GET("/settings/btc-wallet", settingsHandler.GetBTCWallet)
	api.POST("/uploads", publicRateLimit, mediaHandler.UploadPhoto)
	api.GET("/ws", wsHandler.Handle)

	// Административные маршруты
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokenManager))
	{
		admin.GET("/orders", orderHandler.ListOrders)
		admin.PATCH("/orders", orderHandler.UpdateStatus)

		admin.POST("/shows", showHandler.CreateShow)
		admin.PATCH("/shows", showHandler.UpdateShow)
		admin.DELETE("/shows", showHandler.DeleteShow)

		admin.GET("/presale-requests", presaleHandler.ListRequests)
		admin.PATCH("/presale-requests", presaleHandler.UpdateStatus)

		admin.GET("/fan-cards", fanCardHandler.ListCards)
		admin.PATCH("/fan-cards", fanCardHandler.UpdateStatus)

		admin.GET("/chat/sessions", chatHandler.ListSessions)
		admin.POST("/chat/messages", chatHandler.Reply)

		admin.GET("/settings", settingsHandler.ListSettings)
		admin.PATCH("/settings", settingsHandler.UpdateSettings)

		admin.POST("/maintenance/clear", maintenanceHandler.ClearAll)
	}

	return r
}
