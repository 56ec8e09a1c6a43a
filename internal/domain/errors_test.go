package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSeatsError_UnwrapsToKind(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	invalid := InvalidSeats(ids)
	assert.ErrorIs(t, invalid, ErrInvalidSeatsForFlight)
	assert.NotErrorIs(t, invalid, ErrSeatsAlreadyBooked)

	booked := BookedSeats(ids)
	assert.ErrorIs(t, booked, ErrSeatsAlreadyBooked)
	assert.NotErrorIs(t, booked, ErrInvalidSeatsForFlight)
}

func TestSeatsError_CarriesSeatIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}

	var seatsErr *SeatsError
	assert.True(t, errors.As(BookedSeats(ids), &seatsErr))
	assert.Equal(t, ids, seatsErr.SeatIDs)
	assert.Contains(t, seatsErr.Error(), ids[0].String())
}

func TestLetterIndex(t *testing.T) {
	assert.Equal(t, 1, LetterIndex("A"))
	assert.Equal(t, 1, LetterIndex("a"))
	assert.Equal(t, 4, LetterIndex("D"))
	assert.Equal(t, 26, LetterIndex("z"))
	assert.Equal(t, 0, LetterIndex(""))
	assert.Equal(t, 0, LetterIndex("AA"))
	assert.Equal(t, 0, LetterIndex("1"))
	assert.Equal(t, 0, LetterIndex("-"))
}
