package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "tickets_flight_id_seat_id_key"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert ticket: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}

	assert.NotNil(t, NewAirportRepository(pool))
	assert.NotNil(t, NewRouteRepository(pool))
	assert.NotNil(t, NewAirplaneTypeRepository(pool))
	assert.NotNil(t, NewAirplaneRepository(pool))
	assert.NotNil(t, NewCrewRepository(pool))
	assert.NotNil(t, NewSeatClassRepository(pool))
	assert.NotNil(t, NewSeatRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewTicketRepository(pool))
	assert.NotNil(t, NewOrderRepository(pool))
}
