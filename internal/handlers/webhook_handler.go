package handlers

import (
	"errors"
	"io"
	"net/http"

	"iceai_backend/internal/services"
	"iceai_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// MaxWebhookBody bounds the raw body read for signature checks.
const MaxWebhookBody = 1 << 20

type WebhookHandler struct {
	*BaseHandler
	webhookService services.WebhookService
}

func NewWebhookHandler(base *BaseHandler, webhookService services.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:    base,
		webhookService: webhookService,
	}
}

// RegisterRoutes mounts the receivers. They carry no session gate.
func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/webhooks/sellhub", h.Sellhub)
}

func (h *WebhookHandler) Sellhub(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.HandleServiceError(c, apperrors.New(apperrors.CodeLimitExceeded, "webhook", "Payload too large", http.StatusRequestEntityTooLarge))
			return
		}
		h.HandleServiceError(c, apperrors.NewBadRequestError("Failed to read request body"))
		return
	}

	err = h.webhookService.HandleSellhub(c.Request.Context(), h.GetDB(c), body, c.GetHeader("X-Signature"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
