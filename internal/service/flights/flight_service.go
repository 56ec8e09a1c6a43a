package flights

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
	AvailableSeats(ctx context.Context, flightID uuid.UUID) ([]domain.Seat, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
	GetAvailableSeats(ctx context.Context, flightID uuid.UUID) ([]domain.Seat, error)
	SetAvailableSeats(ctx context.Context, flightID uuid.UUID, seats []domain.Seat) error
}

type FlightService struct {
	repo    repository.FlightRepository
	seats   repository.SeatRepository
	tickets repository.TicketRepository
	cache   Cache
}

func NewFlightService(repo repository.FlightRepository, seats repository.SeatRepository, tickets repository.TicketRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, seats: seats, tickets: tickets, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			log.Printf("cache flights: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if !flight.DepartureTime.Before(flight.ArrivalTime) {
		return errors.New("departure time must be before arrival time")
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	s.dropFlightsCache(ctx)
	return nil
}

func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) error {
	if !flight.DepartureTime.Before(flight.ArrivalTime) {
		return errors.New("departure time must be before arrival time")
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return err
	}
	s.dropFlightsCache(ctx)
	return nil
}

func (s *FlightService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dropFlightsCache(ctx)
	return nil
}

// AvailableSeats is the full seat template set for the flight's airplane
// type minus the seats already ticketed. Advisory only: a seat reported
// here can be lost to a concurrent booking, so CreateBooking re-validates.
func (s *FlightService) AvailableSeats(ctx context.Context, flightID uuid.UUID) ([]domain.Seat, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAvailableSeats(ctx, flightID); err == nil && cached != nil {
			return cached, nil
		}
	}

	flight, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}

	all, err := s.seats.ListByAirplaneType(ctx, flight.AirplaneTypeID)
	if err != nil {
		return nil, err
	}
	bookedIDs, err := s.tickets.SeatIDsByFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}
	available := make([]domain.Seat, 0, len(all))
	for _, seat := range all {
		if _, ok := booked[seat.ID]; !ok {
			available = append(available, seat)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetAvailableSeats(ctx, flightID, available); err != nil {
			log.Printf("cache availability for flight %s: %v", flightID, err)
		}
	}
	return available, nil
}

func (s *FlightService) dropFlightsCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
