package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"
	"iceai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     base,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	settings.Use(middleware.LoginRequired())
	{
		settings.GET("/:category", h.ListSettings)
		settings.GET("/:category/:key", h.GetSetting)
		settings.PUT("/:category/:key", h.SetSetting)
	}
}

func (h *SettingsHandler) ListSettings(c *gin.Context) {
	category := c.Param("category")

	values, err := h.settingsService.List(c.Request.Context(), h.GetDB(c), category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"settings": values,
	})
}

func (h *SettingsHandler) GetSetting(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Request.Context(), h.GetDB(c), c.Param("category"), c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// SetSetting takes {"value": <any JSON>}.
func (h *SettingsHandler) SetSetting(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetSettingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	setting, err := h.settingsService.Set(c.Request.Context(), h.GetDB(c), userID, c.Param("category"), c.Param("key"), req.Value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
