package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/config"
	"github.com/mkravets/airport-service/internal/bootstrap"
	"github.com/mkravets/airport-service/internal/cache"
	"github.com/mkravets/airport-service/internal/kafka"
	"github.com/mkravets/airport-service/internal/repository"
	"github.com/mkravets/airport-service/internal/service/booking"
	"github.com/mkravets/airport-service/internal/service/catalog"
	"github.com/mkravets/airport-service/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.AvailabilityTTLSeconds)*time.Second,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	airplaneTypeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	seatClassRepo := repository.NewSeatClassRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	catalogService := catalog.NewCatalogService(airportRepo, routeRepo, airplaneTypeRepo, airplaneRepo, crewRepo, seatClassRepo, seatRepo)
	flightService := flights.NewFlightService(flightRepo, seatRepo, ticketRepo, redisCache)
	bookingService := booking.NewBookingService(
		orderRepo,
		flightRepo,
		seatRepo,
		ticketRepo,
		redisCache,
		producer,
		cfg.Kafka.OrderEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
