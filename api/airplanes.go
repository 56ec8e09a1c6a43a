package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/catalog"
)

type AirplaneTypeHandler struct {
	service catalog.CatalogUseCase
}

type airplaneTypeRequest struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

func NewAirplaneTypeHandler(service catalog.CatalogUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	at, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, at)
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at := &domain.AirplaneType{Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow}
	if err := h.service.CreateAirplaneType(c.Request.Context(), at); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, at)
}

func (h *AirplaneTypeHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at := &domain.AirplaneType{ID: id, Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow}
	if err := h.service.UpdateAirplaneType(c.Request.Context(), at); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, at)
}

func (h *AirplaneTypeHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

type AirplaneHandler struct {
	service catalog.CatalogUseCase
}

type airplaneRequest struct {
	Name           string    `json:"name"`
	AirplaneTypeID uuid.UUID `json:"airplane_type_id"`
}

func NewAirplaneHandler(service catalog.CatalogUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane := &domain.Airplane{Name: req.Name, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.CreateAirplane(c.Request.Context(), airplane); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, airplane)
}

func (h *AirplaneHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane := &domain.Airplane{ID: id, Name: req.Name, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.UpdateAirplane(c.Request.Context(), airplane); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
