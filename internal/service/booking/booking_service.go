package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/kafka"
	"github.com/mkravets/airport-service/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID, userID uuid.UUID) error
	ListTickets(ctx context.Context, userID uuid.UUID) ([]domain.Ticket, error)
}

// Cache is the slice of the availability cache the engine needs: committed
// bookings must drop the stale snapshot for their flight.
type Cache interface {
	InvalidateAvailableSeats(ctx context.Context, flightID uuid.UUID) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	seats              repository.SeatRepository
	tickets            repository.TicketRepository
	cache              Cache
	producer           Producer
	orderTopic         string
	notificationsTopic string
	now                func() time.Time
}

// CreateBookingInput carries one booking request. UserID is the acting
// user resolved by the authentication layer, passed in explicitly.
type CreateBookingInput struct {
	FlightID uuid.UUID
	SeatIDs  []uuid.UUID
	UserID   uuid.UUID
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the time source used for the departure check.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	seats repository.SeatRepository,
	tickets repository.TicketRepository,
	cache Cache,
	producer Producer,
	orderTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		orders:     orders,
		flights:    flights,
		seats:      seats,
		tickets:    tickets,
		cache:      cache,
		producer:   producer,
		orderTopic: orderTopic,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the request against the flight, its seat
// template set and the ticket ledger, then commits one order with one
// ticket per seat as a single atomic unit. Every rejection is one of the
// domain booking errors; the caller can always tell which seats offended.
//
// The pre-checks here are optimistic: two requests can both pass them for
// overlapping seats. The repository's transaction (row locks plus the
// unique (flight, seat) index) decides the winner; the loser still gets
// ErrSeatsAlreadyBooked, never a storage fault.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Order, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	if !flight.Bookable(s.now()) {
		return nil, domain.ErrFlightDeparted
	}

	if invalid, err := s.invalidSeats(ctx, flight, input.SeatIDs); err != nil {
		return nil, err
	} else if len(invalid) > 0 {
		return nil, domain.InvalidSeats(invalid)
	}

	if len(input.SeatIDs) == 0 || hasDuplicates(input.SeatIDs) {
		return nil, domain.ErrEmptyOrDuplicateSeats
	}

	booked, err := s.tickets.BookedAmong(ctx, input.FlightID, input.SeatIDs)
	if err != nil {
		return nil, err
	}
	if len(booked) > 0 {
		return nil, domain.BookedSeats(booked)
	}

	order, err := s.orders.CreateBooking(ctx, input.UserID, input.FlightID, input.SeatIDs)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAvailableSeats(ctx, input.FlightID); err != nil {
			log.Printf("invalidate availability for flight %s: %v", input.FlightID, err)
		}
	}
	if err := s.publish(ctx, "order_created", order); err != nil {
		log.Printf("publish order_created event for order %s: %v", order.ID, err)
	}
	return order, nil
}

// invalidSeats returns the requested seat IDs that either do not exist or
// belong to a different airplane type than the flight's.
func (s *BookingService) invalidSeats(ctx context.Context, flight *domain.Flight, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	existing, err := s.seats.ExistingIDsForType(ctx, flight.AirplaneTypeID, seatIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}
	invalid := make([]uuid.UUID, 0)
	for _, id := range seatIDs {
		if _, ok := known[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	return invalid, nil
}

func hasDuplicates(seatIDs []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func (s *BookingService) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *BookingService) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *BookingService) DeleteOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return domain.ErrForbidden
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	if s.cache != nil {
		for _, t := range order.Tickets {
			if err := s.cache.InvalidateAvailableSeats(ctx, t.FlightID); err != nil {
				log.Printf("invalidate availability for flight %s: %v", t.FlightID, err)
			}
		}
	}
	return nil
}

func (s *BookingService) ListTickets(ctx context.Context, userID uuid.UUID) ([]domain.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.orderTopic == "" {
		return nil
	}
	seatIDs := make([]uuid.UUID, 0, len(order.Tickets))
	flightID := uuid.Nil
	for _, t := range order.Tickets {
		seatIDs = append(seatIDs, t.SeatID)
		flightID = t.FlightID
	}
	event := kafka.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		FlightID:  flightID,
		SeatIDs:   seatIDs,
		CreatedAt: order.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.orderTopic, order.ID.String(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.ID.String(), event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
