package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService          AuthService
	DashboardService     DashboardService
	TicketService        TicketService
	VouchService         VouchService
	MarketplaceService   MarketplaceService
	UploadService        UploadService
	GiveawayService      GiveawayService
	SettingsService      SettingsService
	AutoresponderService AutoresponderService
	VerificationService  VerificationService
	WebhookService       WebhookService
}
