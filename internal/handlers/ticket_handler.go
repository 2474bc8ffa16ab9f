package handlers

import (
	"net/http"

	"iceai_backend/internal/middleware"
	"iceai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	*BaseHandler
	ticketService services.TicketService
}

func NewTicketHandler(base *BaseHandler, ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		BaseHandler:   base,
		ticketService: ticketService,
	}
}

func (h *TicketHandler) RegisterRoutes(r *gin.RouterGroup) {
	tickets := r.Group("/tickets")
	tickets.Use(middleware.LoginRequired())
	{
		tickets.GET("", h.ListTickets)
		tickets.POST("/create", h.CreateTicket)
	}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	input, ok := h.BindInput(c)
	if !ok {
		return
	}

	res, err := h.ticketService.CreateTicket(c.Request.Context(), h.GetDB(c), userID, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.GetUserTickets(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, emptyIfNil(tickets))
}
