package domain

import (
	"time"

	"github.com/google/uuid"
)

type Flight struct {
	ID            uuid.UUID   `json:"id"`
	RouteID       uuid.UUID   `json:"route_id"`
	AirplaneID    uuid.UUID   `json:"airplane_id"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	CrewIDs       []uuid.UUID `json:"crew_ids,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// AirplaneTypeID is resolved through the airplane when the flight is
	// loaded; it defines the flight's valid seat universe.
	AirplaneTypeID uuid.UUID `json:"airplane_type_id"`
}

// Bookable reports whether the flight can still accept bookings at the
// given instant. The same check runs again inside the booking transaction,
// so a flight departing mid-request is still rejected.
func (f *Flight) Bookable(now time.Time) bool {
	return f.DepartureTime.After(now)
}
