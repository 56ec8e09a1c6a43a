package domain

import (
	"time"

	"github.com/google/uuid"
)

type Airport struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ClosestBigCity string    `json:"closest_big_city"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Route struct {
	ID            uuid.UUID `json:"id"`
	SourceID      uuid.UUID `json:"source_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	Distance      int       `json:"distance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AirplaneType struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Rows       int       `json:"rows"`
	SeatsInRow int       `json:"seats_in_row"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Airplane struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	AirplaneTypeID uuid.UUID `json:"airplane_type_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Crew struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SeatClass struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Seat is a seat template scoped to an airplane type, independent of any
// flight. Row is 1-based, Letter is an upper-case letter whose index
// (A=1, B=2, ...) must fit within the owning type's SeatsInRow.
type Seat struct {
	ID             uuid.UUID `json:"id"`
	AirplaneTypeID uuid.UUID `json:"airplane_type_id"`
	Row            int       `json:"row"`
	Letter         string    `json:"letter"`
	SeatClassID    uuid.UUID `json:"seat_class_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LetterIndex returns the 1-based index of a seat letter, so "A" and "a"
// are both 1. Returns 0 for anything that is not a single latin letter.
func LetterIndex(letter string) int {
	if len(letter) != 1 {
		return 0
	}
	c := letter[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 1
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	}
	return 0
}
