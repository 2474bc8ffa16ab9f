package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AutoresponderHandler struct {
	*BaseHandler
	autoresponderService services.AutoresponderService
}

func NewAutoresponderHandler(base *BaseHandler, autoresponderService services.AutoresponderService) *AutoresponderHandler {
	return &AutoresponderHandler{
		BaseHandler:          base,
		autoresponderService: autoresponderService,
	}
}

func (h *AutoresponderHandler) RegisterRoutes(r *gin.RouterGroup) {
	rules := r.Group("/autoresponder")
	rules.Use(middleware.LoginRequired())
	{
		rules.GET("", h.ListRules)
		rules.POST("", h.CreateRule)
	}
}

func (h *AutoresponderHandler) ListRules(c *gin.Context) {
	rules, err := h.autoresponderService.ListRules(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": emptyIfNil(rules)})
}

func (h *AutoresponderHandler) CreateRule(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	input, ok := h.BindInput(c)
	if !ok {
		return
	}

	res, err := h.autoresponderService.CreateRule(c.Request.Context(), h.GetDB(c), userID, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
