package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/airport-service/config"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps JSON snapshots of the flight list and of per-flight
// seat availability. Availability snapshots are advisory and get dropped
// whenever a booking commits for the flight.
type RedisCache struct {
	client          *redis.Client
	flightsTTL      time.Duration
	availabilityTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, availabilityTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL:      flightsTTL,
		availabilityTTL: availabilityTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func (c *RedisCache) GetAvailableSeats(ctx context.Context, flightID uuid.UUID) ([]domain.Seat, error) {
	data, err := c.client.Get(ctx, availabilityKey(flightID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var seats []domain.Seat
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (c *RedisCache) SetAvailableSeats(ctx context.Context, flightID uuid.UUID, seats []domain.Seat) error {
	payload, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(flightID), payload, c.availabilityTTL).Err()
}

func (c *RedisCache) InvalidateAvailableSeats(ctx context.Context, flightID uuid.UUID) error {
	return c.client.Del(ctx, availabilityKey(flightID)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func availabilityKey(flightID uuid.UUID) string {
	return fmt.Sprintf("cache:flight:%s:available-seats", flightID)
}
