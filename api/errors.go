package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Booking rejections
// that know their offending seats include them in the body so callers can
// tell which seat IDs were invalid or contested. fallback is used for
// errors outside the domain taxonomy.
func respondError(c *gin.Context, err error, fallback int) {
	payload := gin.H{"error": err.Error()}
	var seatsErr *domain.SeatsError
	if errors.As(err, &seatsErr) {
		payload["seat_ids"] = seatsErr.SeatIDs
	}

	status := fallback
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrFlightNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrSeatsAlreadyBooked):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrFlightDeparted),
		errors.Is(err, domain.ErrInvalidSeatsForFlight),
		errors.Is(err, domain.ErrEmptyOrDuplicateSeats):
		status = http.StatusBadRequest
	}
	c.JSON(status, payload)
}

// parseID reads the :id path parameter as a UUID, responding 400 itself
// when the value does not parse.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
