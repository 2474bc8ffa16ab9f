package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	PageHandler          *PageHandler
	TicketHandler        *TicketHandler
	VouchHandler         *VouchHandler
	MarketplaceHandler   *MarketplaceHandler
	GiveawayHandler      *GiveawayHandler
	SettingsHandler      *SettingsHandler
	AutoresponderHandler *AutoresponderHandler
	VerificationHandler  *VerificationHandler
	WebhookHandler       *WebhookHandler

	// FileHandler is nil unless uploads are kept in local storage.
	FileHandler *FileHandler
}
