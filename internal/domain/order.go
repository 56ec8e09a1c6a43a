package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is the container for the tickets produced by one booking request.
// Its seat set is immutable after creation; tickets are deleted with it.
type Order struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Tickets   []Ticket  `json:"tickets,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ticket binds one seat template to one flight under one order. For any
// flight each seat appears in at most one ticket; the storage layer
// enforces that with a unique index on (flight_id, seat_id).
type Ticket struct {
	ID        uuid.UUID `json:"id"`
	FlightID  uuid.UUID `json:"flight_id"`
	SeatID    uuid.UUID `json:"seat_id"`
	OrderID   uuid.UUID `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
