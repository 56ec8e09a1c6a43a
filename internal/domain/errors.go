package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors shared across repositories and services. Handlers match
// on these with errors.Is to pick a response status.
var (
	// ErrNotFound covers catalog resources (airports, routes, seats, ...).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists signals a catalog uniqueness conflict, e.g. a seat
	// template repeating (airplane_type, row, letter).
	ErrAlreadyExists = errors.New("already exists")

	// ErrForbidden is returned when a user touches an order or ticket
	// owned by someone else.
	ErrForbidden = errors.New("forbidden")
)

// Booking rejections. Every one of these is a rejected request, not a
// system fault; callers may re-query availability and resubmit.
var (
	ErrFlightNotFound        = errors.New("flight not found")
	ErrFlightDeparted        = errors.New("flight has already departed")
	ErrInvalidSeatsForFlight = errors.New("seats do not belong to the flight's airplane type")
	ErrEmptyOrDuplicateSeats = errors.New("seat list is empty or contains duplicates")
	ErrSeatsAlreadyBooked    = errors.New("seats are already booked for this flight")
)

// SeatsError carries the offending seat IDs for rejections where the
// caller needs to know which seats were at fault. It unwraps to one of
// ErrInvalidSeatsForFlight or ErrSeatsAlreadyBooked, so errors.Is keeps
// working and errors.As recovers the IDs.
type SeatsError struct {
	Kind    error
	SeatIDs []uuid.UUID
}

func (e *SeatsError) Error() string {
	ids := make([]string, len(e.SeatIDs))
	for i, id := range e.SeatIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(ids, ", "))
}

func (e *SeatsError) Unwrap() error { return e.Kind }

// InvalidSeats builds the rejection for seat IDs that do not exist or
// belong to a different airplane type than the flight's.
func InvalidSeats(seatIDs []uuid.UUID) error {
	return &SeatsError{Kind: ErrInvalidSeatsForFlight, SeatIDs: seatIDs}
}

// BookedSeats builds the rejection for seats already ticketed on the
// flight, whether found by the pre-check or by a unique-constraint
// conflict at commit.
func BookedSeats(seatIDs []uuid.UUID) error {
	return &SeatsError{Kind: ErrSeatsAlreadyBooked, SeatIDs: seatIDs}
}
