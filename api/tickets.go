package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/airport-service/internal/auth"
	"github.com/mkravets/airport-service/internal/service/booking"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *TicketHandler) list(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	tickets, err := h.service.ListTickets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, tickets)
}
