package handlers

import (
	"encoding/json"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"
	"iceai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const (
	moderationLogLimit    = 20
	maxModerationLogLimit = 100
)

// PageHandler serves the view models of the logged-in pages.
// A failed lookup renders the page with empty data and an error flash.
type PageHandler struct {
	*BaseHandler
	services *services.ServiceContainer
}

func NewPageHandler(base *BaseHandler, services *services.ServiceContainer) *PageHandler {
	return &PageHandler{
		BaseHandler: base,
		services:    services,
	}
}

func (h *PageHandler) RegisterRoutes(r *gin.RouterGroup) {
	pages := r.Group("")
	pages.Use(middleware.LoginRequired())
	{
		pages.GET("/dashboard", h.Dashboard)
		pages.GET("/tickets", h.Tickets)
		pages.GET("/vouches", h.Vouches)
		pages.GET("/marketplace", h.Marketplace)
		pages.GET("/moderation", h.Moderation)
		pages.GET("/verification", h.Verification)
		pages.GET("/giveaways", h.Giveaways)
		pages.GET("/autoresponder", h.Autoresponder)
	}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.services.DashboardService.GetUserStats(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.FlashError(c, err)
		stats = &dto.DashboardStats{}
	}
	h.RenderPage(c, "dashboard", gin.H{"stats": stats})
}

func (h *PageHandler) Tickets(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tickets, err := h.services.TicketService.GetUserTickets(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "tickets", gin.H{"tickets": emptyIfNil(tickets)})
}

func (h *PageHandler) Vouches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), h.GetDB(c)

	lists := dto.VouchLists{}
	given, err := h.services.VouchService.GetUserVouches(ctx, db, userID)
	if err == nil {
		lists.Given = given
		lists.Received, err = h.services.VouchService.GetReceivedVouches(ctx, db, userID)
	}
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "vouches", gin.H{
		"given":    emptyIfNil(lists.Given),
		"received": emptyIfNil(lists.Received),
	})
}

func (h *PageHandler) Marketplace(c *gin.Context) {
	accounts, err := h.services.MarketplaceService.GetAvailableListings(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "marketplace", gin.H{"accounts": emptyIfNil(accounts)})
}

func (h *PageHandler) Moderation(c *gin.Context) {
	ctx, db := c.Request.Context(), h.GetDB(c)

	settings, err := h.services.SettingsService.List(ctx, db, services.ModerationCategory)
	if err != nil {
		h.FlashError(c, err)
		settings = map[string]json.RawMessage{}
	}
	limit := ParseQueryInt(c, "logs", moderationLogLimit)
	if limit <= 0 || limit > maxModerationLogLimit {
		limit = moderationLogLimit
	}
	logs, err := h.services.SettingsService.RecentModLogs(ctx, db, limit)
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "moderation", gin.H{
		"settings": settings,
		"mod_logs": emptyIfNil(logs),
	})
}

func (h *PageHandler) Verification(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status, err := h.services.VerificationService.Status(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.FlashError(c, err)
		status = &dto.VerificationStatus{}
	}
	h.RenderPage(c, "verification", gin.H{"verified": status.Verified})
}

func (h *PageHandler) Giveaways(c *gin.Context) {
	giveaways, err := h.services.GiveawayService.ListActive(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "giveaways", gin.H{"giveaways": emptyIfNil(giveaways)})
}

func (h *PageHandler) Autoresponder(c *gin.Context) {
	rules, err := h.services.AutoresponderService.ListRules(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.FlashError(c, err)
	}
	h.RenderPage(c, "autoresponder", gin.H{"rules": emptyIfNil(rules)})
}

// emptyIfNil keeps lists as [] rather than null in JSON.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
