package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlight_Bookable(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	future := &Flight{DepartureTime: now.Add(time.Minute)}
	assert.True(t, future.Bookable(now))

	past := &Flight{DepartureTime: now.Add(-time.Minute)}
	assert.False(t, past.Bookable(now))

	// Departing exactly now is already closed.
	boundary := &Flight{DepartureTime: now}
	assert.False(t, boundary.Bookable(now))
}
