package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"
	"iceai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	verification := r.Group("/verification")
	verification.Use(middleware.LoginRequired())
	{
		verification.GET("/status", h.Status)
		verification.POST("/verify", h.Verify)
	}
}

func (h *VerificationHandler) Verify(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	status, err := h.verificationService.Verify(c.Request.Context(), h.GetDB(c), userID, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *VerificationHandler) Status(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status, err := h.verificationService.Status(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
