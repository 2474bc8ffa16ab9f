package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MarketplaceHandler struct {
	*BaseHandler
	marketplaceService services.MarketplaceService
	uploadService      services.UploadService
}

func NewMarketplaceHandler(base *BaseHandler, marketplaceService services.MarketplaceService, uploadService services.UploadService) *MarketplaceHandler {
	return &MarketplaceHandler{
		BaseHandler:        base,
		marketplaceService: marketplaceService,
		uploadService:      uploadService,
	}
}

func (h *MarketplaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	market := r.Group("/marketplace")
	market.Use(middleware.LoginRequired())
	{
		market.GET("/accounts", h.ListAccounts)
		market.POST("/accounts", h.CreateAccount)
		market.POST("/images", h.UploadImage)
	}
}

func (h *MarketplaceHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.marketplaceService.GetAvailableListings(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyIfNil(accounts))
}

func (h *MarketplaceHandler) CreateAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	input, ok := h.BindInput(c)
	if !ok {
		return
	}

	res, err := h.marketplaceService.CreateListing(c.Request.Context(), h.GetDB(c), userID, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// UploadImage takes the multipart field "image".
func (h *MarketplaceHandler) UploadImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// A missing field is reported by the service.
	file, _ := c.FormFile("image")

	res, err := h.uploadService.UploadListingImage(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
