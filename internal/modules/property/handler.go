package property

import (
	"errors"
	"log"
	"net/http"

	"stayquote/internal/pkg/response"
	"stayquote/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public read endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/:id", h.GetProperty)
}

// RegisterInternalRoutes wires the write endpoints; callers are expected to
// guard the group with the internal token middleware.
func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.POST("/properties", h.UpsertProperty)
	rg.PUT("/properties/:id/calendar", h.UpsertCalendar)
}

// GetProperty handles GET /api/v1/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	p, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": p})
}

// UpsertProperty handles POST /api/v1/internal/properties
func (h *Handler) UpsertProperty(c *gin.Context) {
	var req UpsertPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property payload", fields)
		return
	}

	p, err := h.service.UpsertProperty(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": p})
}

// UpsertCalendar handles PUT /api/v1/internal/properties/:id/calendar
func (h *Handler) UpsertCalendar(c *gin.Context) {
	var req UpsertCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid calendar payload", fields)
		return
	}

	cal, err := h.service.UpsertCalendar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"calendar": cal})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	default:
		log.Printf("property_error path=%s error=%q", c.Request.URL.Path, err.Error())
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
