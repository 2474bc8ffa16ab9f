package app

import (
	"context"
	"fmt"

	"iceai_backend/internal/auth"
	"iceai_backend/internal/config"
	"iceai_backend/internal/database"
	"iceai_backend/internal/handlers"
	"iceai_backend/internal/imageprocessor"
	"iceai_backend/internal/logger"
	"iceai_backend/internal/middleware"
	"iceai_backend/internal/repositories"
	"iceai_backend/internal/routes"
	"iceai_backend/internal/services"
	"iceai_backend/internal/storage"
	"iceai_backend/internal/validator"
	"iceai_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// The logger is not configured yet; fall back to its defaults.
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	gormDB, err := database.Open(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to initialize schema", "error", err)
	}
	logger.Info("Database ready")

	if cfg.Webhook.Secret == "" {
		logger.Warn("SELLHUB_SECRET is not set; the sellhub webhook will reject every request")
	}
	if cfg.Verification.Code == "" {
		logger.Warn("VERIFICATION_CODE is not set; verification is disabled")
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	address := cfg.Addr()
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services and handlers over an open, migrated database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(context.Background(), storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	sessions := auth.NewSessionStore(auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.Session.Secure,
	})

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, sessions, storageInstance)

	ginRouter := initializeGinRouter(gormDB, sessions)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	customValidator := validator.New()

	discord := auth.NewDiscordClient(auth.DiscordConfig{
		ClientID:     cfg.Discord.ClientID,
		ClientSecret: cfg.Discord.ClientSecret,
		RedirectURI:  cfg.Discord.RedirectURI,
		APIBase:      cfg.Discord.APIBase,
		Scopes:       cfg.Discord.Scopes,
		Timeout:      cfg.Discord.Timeout,
	})

	// --- repositories ---
	userRepo := repositories.NewUserRepository()
	vouchRepo := repositories.NewVouchRepository()
	ticketRepo := repositories.NewTicketRepository()
	accountRepo := repositories.NewAccountRepository()
	giveawayRepo := repositories.NewGiveawayRepository()
	inviteRepo := repositories.NewInviteRepository()
	settingRepo := repositories.NewSettingRepository()
	ruleRepo := repositories.NewAutoresponderRepository()
	modLogRepo := repositories.NewModLogRepository()
	webhookLogRepo := repositories.NewWebhookLogRepository()

	// --- services ---
	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(discord, userRepo),
		DashboardService:   services.NewDashboardService(userRepo, vouchRepo, ticketRepo, accountRepo, inviteRepo),
		TicketService:      services.NewTicketService(ticketRepo, customValidator),
		VouchService:       services.NewVouchService(vouchRepo, customValidator),
		MarketplaceService: services.NewMarketplaceService(accountRepo, customValidator),
		UploadService: services.NewUploadService(storageInstance, imageprocessor.NewProcessor(cfg.Upload.JPEGQuality, cfg.Upload.MaxDimension), services.UploadConfig{
			MaxFileSize:  cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		}),
		GiveawayService:      services.NewGiveawayService(giveawayRepo, customValidator),
		SettingsService:      services.NewSettingsService(settingRepo, modLogRepo, customValidator),
		AutoresponderService: services.NewAutoresponderService(ruleRepo, customValidator),
		VerificationService:  services.NewVerificationService(userRepo, cfg.Verification.Code),
		WebhookService:       services.NewWebhookService(webhookLogRepo, cfg.Webhook.Secret),
	}
}

func initializeHandlers(svc *services.ServiceContainer, sessions *auth.SessionStore, storageInstance storage.Storage) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New(), sessions)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:          handlers.NewAuthHandler(baseHandler, svc.AuthService),
		PageHandler:          handlers.NewPageHandler(baseHandler, svc),
		TicketHandler:        handlers.NewTicketHandler(baseHandler, svc.TicketService),
		VouchHandler:         handlers.NewVouchHandler(baseHandler, svc.VouchService),
		MarketplaceHandler:   handlers.NewMarketplaceHandler(baseHandler, svc.MarketplaceService, svc.UploadService),
		GiveawayHandler:      handlers.NewGiveawayHandler(baseHandler, svc.GiveawayService),
		SettingsHandler:      handlers.NewSettingsHandler(baseHandler, svc.SettingsService),
		AutoresponderHandler: handlers.NewAutoresponderHandler(baseHandler, svc.AutoresponderService),
		VerificationHandler:  handlers.NewVerificationHandler(baseHandler, svc.VerificationService),
		WebhookHandler:       handlers.NewWebhookHandler(baseHandler, svc.WebhookService),
	}
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		appHandlers.FileHandler = handlers.NewFileHandler(baseHandler, local)
	}
	return appHandlers
}

func initializeGinRouter(db *gorm.DB, sessions *auth.SessionStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionMiddleware(sessions))
	return router
}
