package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/auth"
	"github.com/mkravets/airport-service/internal/service/booking"
)

type OrderHandler struct {
	service booking.BookingUseCase
}

type createOrderRequest struct {
	FlightID uuid.UUID   `json:"flight_id"`
	SeatIDs  []uuid.UUID `json:"seat_ids"`
}

func NewOrderHandler(service booking.BookingUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.DELETE("/:id", h.delete)
}

func (h *OrderHandler) create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID: req.FlightID,
		SeatIDs:  req.SeatIDs,
		UserID:   userID,
	})
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) list(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) get(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) delete(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
