package routes

import (
	"iceai_backend/internal/handlers"
	"iceai_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the pages, the JSON API and the webhook receivers.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.PageHandler.RegisterRoutes(root)
		appHandlers.WebhookHandler.RegisterRoutes(root)
	}

	api := ginRouter.Group("/api")
	{
		appHandlers.TicketHandler.RegisterRoutes(api)
		appHandlers.VouchHandler.RegisterRoutes(api)
		appHandlers.MarketplaceHandler.RegisterRoutes(api)
		appHandlers.GiveawayHandler.RegisterRoutes(api)
		appHandlers.SettingsHandler.RegisterRoutes(api)
		appHandlers.AutoresponderHandler.RegisterRoutes(api)
		appHandlers.VerificationHandler.RegisterRoutes(api)
	}

	if appHandlers.FileHandler != nil {
		appHandlers.FileHandler.RegisterRoutes(root)
		logger.Info("Local file route registered")
	}
}
