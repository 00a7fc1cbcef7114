package quote

import (
	"errors"
	"log"
	"net/http"

	"stayquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/:id/quote", h.GetQuote)
}

// GetQuote handles GET /api/v1/properties/:id/quote
func (h *Handler) GetQuote(c *gin.Context) {
	req := QuoteRequest{
		PropertyID: c.Param("id"),
		CheckIn:    c.Query("check_in"),
		CheckOut:   c.Query("check_out"),
		Guests:     c.Query("guests"),
	}

	q, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, q)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var dayErr *DayPriceError

	switch {
	case errors.Is(err, ErrMissingParameter),
		errors.Is(err, ErrInvalidGuests),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrPastCheckIn),
		errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())

	case errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrPriceDataUnavailable):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.As(err, &dayErr):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", dayErr.Error())

	default:
		log.Printf("quote_error path=%s error=%q", c.Request.URL.Path, err.Error())
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build quote")
	}
}
