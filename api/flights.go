package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	RouteID       uuid.UUID   `json:"route_id"`
	AirplaneID    uuid.UUID   `json:"airplane_id"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	CrewIDs       []uuid.UUID `json:"crew_ids"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seats/available", h.availableSeats)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// availableSeats reports the seats not yet ticketed for the flight. The
// list is a snapshot: a seat shown here can still be lost to a concurrent
// booking, and an empty list is a valid response.
func (h *FlightHandler) availableSeats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seats, err := h.service.AvailableSeats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight := &domain.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	}
	if err := h.service.Create(c.Request.Context(), flight); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight := &domain.Flight{
		ID:            id,
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	}
	if err := h.service.Update(c.Request.Context(), flight); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
