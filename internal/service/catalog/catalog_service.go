package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/mkravets/airport-service/internal/repository"
)

// CatalogUseCase covers the resource catalog the booking engine reads
// from: airports, routes, airplane types and airplanes, crews, seat
// classes and seat templates.
type CatalogUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	CreateAirport(ctx context.Context, a *domain.Airport) error
	UpdateAirport(ctx context.Context, a *domain.Airport) error
	DeleteAirport(ctx context.Context, id uuid.UUID) error

	ListRoutes(ctx context.Context) ([]domain.Route, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*domain.Route, error)
	CreateRoute(ctx context.Context, r *domain.Route) error
	UpdateRoute(ctx context.Context, r *domain.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, at *domain.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, at *domain.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id uuid.UUID) error

	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id uuid.UUID) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, a *domain.Airplane) error
	UpdateAirplane(ctx context.Context, a *domain.Airplane) error
	DeleteAirplane(ctx context.Context, id uuid.UUID) error

	ListCrews(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id uuid.UUID) (*domain.Crew, error)
	CreateCrew(ctx context.Context, c *domain.Crew) error
	UpdateCrew(ctx context.Context, c *domain.Crew) error
	DeleteCrew(ctx context.Context, id uuid.UUID) error

	ListSeatClasses(ctx context.Context) ([]domain.SeatClass, error)
	GetSeatClass(ctx context.Context, id uuid.UUID) (*domain.SeatClass, error)
	CreateSeatClass(ctx context.Context, sc *domain.SeatClass) error
	UpdateSeatClass(ctx context.Context, sc *domain.SeatClass) error
	DeleteSeatClass(ctx context.Context, id uuid.UUID) error

	ListSeats(ctx context.Context) ([]domain.Seat, error)
	GetSeat(ctx context.Context, id uuid.UUID) (*domain.Seat, error)
	CreateSeat(ctx context.Context, s *domain.Seat) error
	UpdateSeat(ctx context.Context, s *domain.Seat) error
	DeleteSeat(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	airports      repository.AirportRepository
	routes        repository.RouteRepository
	airplaneTypes repository.AirplaneTypeRepository
	airplanes     repository.AirplaneRepository
	crews         repository.CrewRepository
	seatClasses   repository.SeatClassRepository
	seats         repository.SeatRepository
}

func NewCatalogService(
	airports repository.AirportRepository,
	routes repository.RouteRepository,
	airplaneTypes repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	crews repository.CrewRepository,
	seatClasses repository.SeatClassRepository,
	seats repository.SeatRepository,
) *CatalogService {
	return &CatalogService{
		airports:      airports,
		routes:        routes,
		airplaneTypes: airplaneTypes,
		airplanes:     airplanes,
		crews:         crews,
		seatClasses:   seatClasses,
		seats:         seats,
	}
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *CatalogService) GetAirport(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, a *domain.Airport) error {
	if a.Name == "" {
		return errors.New("airport name is required")
	}
	return s.airports.Create(ctx, a)
}

func (s *CatalogService) UpdateAirport(ctx context.Context, a *domain.Airport) error {
	if a.Name == "" {
		return errors.New("airport name is required")
	}
	return s.airports.Update(ctx, a)
}

func (s *CatalogService) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	return s.airports.Delete(ctx, id)
}

func (s *CatalogService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.routes.List(ctx)
}

func (s *CatalogService) GetRoute(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, r *domain.Route) error {
	if r.Distance < 0 {
		return errors.New("route distance must not be negative")
	}
	return s.routes.Create(ctx, r)
}

func (s *CatalogService) UpdateRoute(ctx context.Context, r *domain.Route) error {
	if r.Distance < 0 {
		return errors.New("route distance must not be negative")
	}
	return s.routes.Update(ctx, r)
}

func (s *CatalogService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return s.routes.Delete(ctx, id)
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.airplaneTypes.List(ctx)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error) {
	return s.airplaneTypes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, at *domain.AirplaneType) error {
	if at.Rows < 1 || at.SeatsInRow < 1 {
		return errors.New("rows and seats_in_row must be at least 1")
	}
	return s.airplaneTypes.Create(ctx, at)
}

func (s *CatalogService) UpdateAirplaneType(ctx context.Context, at *domain.AirplaneType) error {
	if at.Rows < 1 || at.SeatsInRow < 1 {
		return errors.New("rows and seats_in_row must be at least 1")
	}
	return s.airplaneTypes.Update(ctx, at)
}

func (s *CatalogService) DeleteAirplaneType(ctx context.Context, id uuid.UUID) error {
	return s.airplaneTypes.Delete(ctx, id)
}

func (s *CatalogService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id uuid.UUID) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, a *domain.Airplane) error {
	if _, err := s.airplaneTypes.GetByID(ctx, a.AirplaneTypeID); err != nil {
		return fmt.Errorf("airplane type: %w", err)
	}
	return s.airplanes.Create(ctx, a)
}

func (s *CatalogService) UpdateAirplane(ctx context.Context, a *domain.Airplane) error {
	if _, err := s.airplaneTypes.GetByID(ctx, a.AirplaneTypeID); err != nil {
		return fmt.Errorf("airplane type: %w", err)
	}
	return s.airplanes.Update(ctx, a)
}

func (s *CatalogService) DeleteAirplane(ctx context.Context, id uuid.UUID) error {
	return s.airplanes.Delete(ctx, id)
}

func (s *CatalogService) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	return s.crews.List(ctx)
}

func (s *CatalogService) GetCrew(ctx context.Context, id uuid.UUID) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, c *domain.Crew) error {
	return s.crews.Create(ctx, c)
}

func (s *CatalogService) UpdateCrew(ctx context.Context, c *domain.Crew) error {
	return s.crews.Update(ctx, c)
}

func (s *CatalogService) DeleteCrew(ctx context.Context, id uuid.UUID) error {
	return s.crews.Delete(ctx, id)
}

func (s *CatalogService) ListSeatClasses(ctx context.Context) ([]domain.SeatClass, error) {
	return s.seatClasses.List(ctx)
}

func (s *CatalogService) GetSeatClass(ctx context.Context, id uuid.UUID) (*domain.SeatClass, error) {
	return s.seatClasses.GetByID(ctx, id)
}

func (s *CatalogService) CreateSeatClass(ctx context.Context, sc *domain.SeatClass) error {
	return s.seatClasses.Create(ctx, sc)
}

func (s *CatalogService) UpdateSeatClass(ctx context.Context, sc *domain.SeatClass) error {
	return s.seatClasses.Update(ctx, sc)
}

func (s *CatalogService) DeleteSeatClass(ctx context.Context, id uuid.UUID) error {
	return s.seatClasses.Delete(ctx, id)
}

func (s *CatalogService) ListSeats(ctx context.Context) ([]domain.Seat, error) {
	return s.seats.List(ctx)
}

func (s *CatalogService) GetSeat(ctx context.Context, id uuid.UUID) (*domain.Seat, error) {
	return s.seats.GetByID(ctx, id)
}

func (s *CatalogService) CreateSeat(ctx context.Context, seat *domain.Seat) error {
	if err := s.validateSeat(ctx, seat); err != nil {
		return err
	}
	return s.seats.Create(ctx, seat)
}

func (s *CatalogService) UpdateSeat(ctx context.Context, seat *domain.Seat) error {
	if err := s.validateSeat(ctx, seat); err != nil {
		return err
	}
	return s.seats.Update(ctx, seat)
}

func (s *CatalogService) DeleteSeat(ctx context.Context, id uuid.UUID) error {
	return s.seats.Delete(ctx, id)
}

// validateSeat checks the template against its airplane type's bounds and
// normalizes the letter to upper case. Letters compare case-insensitively,
// so "a1" and "A1" are the same seat.
func (s *CatalogService) validateSeat(ctx context.Context, seat *domain.Seat) error {
	at, err := s.airplaneTypes.GetByID(ctx, seat.AirplaneTypeID)
	if err != nil {
		return fmt.Errorf("airplane type: %w", err)
	}
	if seat.Row < 1 || seat.Row > at.Rows {
		return fmt.Errorf("row %d is out of range 1..%d", seat.Row, at.Rows)
	}
	idx := domain.LetterIndex(seat.Letter)
	if idx == 0 || idx > at.SeatsInRow {
		return fmt.Errorf("seat letter %q is out of range for %d seats in a row", seat.Letter, at.SeatsInRow)
	}
	seat.Letter = strings.ToUpper(seat.Letter)
	return nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
