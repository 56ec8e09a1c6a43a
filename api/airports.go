package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/catalog"
)

type AirportHandler struct {
	service catalog.CatalogUseCase
}

type airportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func NewAirportHandler(service catalog.CatalogUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport := &domain.Airport{Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := h.service.CreateAirport(c.Request.Context(), airport); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport := &domain.Airport{ID: id, Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := h.service.UpdateAirport(c.Request.Context(), airport); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
