package handlers

import (
	"bytes"
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"
	"iceai_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VouchHandler struct {
	*BaseHandler
	vouchService services.VouchService
}

func NewVouchHandler(base *BaseHandler, vouchService services.VouchService) *VouchHandler {
	return &VouchHandler{
		BaseHandler:  base,
		vouchService: vouchService,
	}
}

func (h *VouchHandler) RegisterRoutes(r *gin.RouterGroup) {
	vouches := r.Group("/vouches")
	vouches.Use(middleware.LoginRequired())
	{
		vouches.GET("", h.ListVouches)
		vouches.POST("/create", h.CreateVouch)
		vouches.GET("/export", h.ExportVouches)
	}
}

func (h *VouchHandler) CreateVouch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	input, ok := h.BindInput(c)
	if !ok {
		return
	}

	res, err := h.vouchService.CreateVouch(c.Request.Context(), h.GetDB(c), userID, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *VouchHandler) ListVouches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), h.GetDB(c)

	given, err := h.vouchService.GetUserVouches(ctx, db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	received, err := h.vouchService.GetReceivedVouches(ctx, db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VouchLists{Given: emptyIfNil(given), Received: emptyIfNil(received)})
}

// ExportVouches sends the caller's vouches as a CSV attachment.
// The file is built in memory so a store failure can still be reported as JSON.
func (h *VouchHandler) ExportVouches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.vouchService.ExportCSV(c.Request.Context(), h.GetDB(c), userID, &buf); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vouches.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
