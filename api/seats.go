package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/catalog"
)

type SeatClassHandler struct {
	service catalog.CatalogUseCase
}

type seatClassRequest struct {
	Name string `json:"name"`
}

func NewSeatClassHandler(service catalog.CatalogUseCase) *SeatClassHandler {
	return &SeatClassHandler{service: service}
}

func (h *SeatClassHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *SeatClassHandler) list(c *gin.Context) {
	classes, err := h.service.ListSeatClasses(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *SeatClassHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sc, err := h.service.GetSeatClass(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (h *SeatClassHandler) create(c *gin.Context) {
	var req seatClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sc := &domain.SeatClass{Name: req.Name}
	if err := h.service.CreateSeatClass(c.Request.Context(), sc); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

func (h *SeatClassHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req seatClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sc := &domain.SeatClass{ID: id, Name: req.Name}
	if err := h.service.UpdateSeatClass(c.Request.Context(), sc); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (h *SeatClassHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSeatClass(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

type SeatHandler struct {
	service catalog.CatalogUseCase
}

type seatRequest struct {
	AirplaneTypeID uuid.UUID `json:"airplane_type_id"`
	Row            int       `json:"row"`
	Letter         string    `json:"letter"`
	SeatClassID    uuid.UUID `json:"seat_class_id"`
}

func NewSeatHandler(service catalog.CatalogUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *SeatHandler) list(c *gin.Context) {
	seats, err := h.service.ListSeats(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *SeatHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seat, err := h.service.GetSeat(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) create(c *gin.Context) {
	var req seatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seat := &domain.Seat{AirplaneTypeID: req.AirplaneTypeID, Row: req.Row, Letter: req.Letter, SeatClassID: req.SeatClassID}
	if err := h.service.CreateSeat(c.Request.Context(), seat); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, seat)
}

func (h *SeatHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req seatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seat := &domain.Seat{ID: id, AirplaneTypeID: req.AirplaneTypeID, Row: req.Row, Letter: req.Letter, SeatClassID: req.SeatClassID}
	if err := h.service.UpdateSeat(c.Request.Context(), seat); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSeat(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
