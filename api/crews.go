package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/service/catalog"
)

type CrewHandler struct {
	service catalog.CatalogUseCase
}

type crewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewCrewHandler(service catalog.CatalogUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *CrewHandler) list(c *gin.Context) {
	crews, err := h.service.ListCrews(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, crews)
}

func (h *CrewHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) create(c *gin.Context) {
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew := &domain.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.CreateCrew(c.Request.Context(), crew); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, crew)
}

func (h *CrewHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew := &domain.Crew{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.UpdateCrew(c.Request.Context(), crew); err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
