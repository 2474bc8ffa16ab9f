package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GiveawayHandler struct {
	*BaseHandler
	giveawayService services.GiveawayService
}

func NewGiveawayHandler(base *BaseHandler, giveawayService services.GiveawayService) *GiveawayHandler {
	return &GiveawayHandler{
		BaseHandler:     base,
		giveawayService: giveawayService,
	}
}

func (h *GiveawayHandler) RegisterRoutes(r *gin.RouterGroup) {
	giveaways := r.Group("/giveaways")
	giveaways.Use(middleware.LoginRequired())
	{
		giveaways.GET("", h.ListGiveaways)
		giveaways.POST("/create", h.CreateGiveaway)
	}
}

func (h *GiveawayHandler) CreateGiveaway(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	input, ok := h.BindInput(c)
	if !ok {
		return
	}

	res, err := h.giveawayService.CreateGiveaway(c.Request.Context(), h.GetDB(c), userID, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *GiveawayHandler) ListGiveaways(c *gin.Context) {
	giveaways, err := h.giveawayService.ListActive(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyIfNil(giveaways))
}
