package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/catalog"
)

type RouteHandler struct {
	service catalog.CatalogUseCase
}

type routeRequest struct {
	SourceID      uuid.UUID `json:"source_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	Distance      int       `json:"distance"`
}

func NewRouteHandler(service catalog.CatalogUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *RouteHandler) list(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) create(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route := &domain.Route{SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.CreateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route := &domain.Route{ID: id, SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.UpdateRoute(c.Request.Context(), route); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
