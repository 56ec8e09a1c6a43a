package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// Flights are always loaded together with the airplane's type, because the
// type defines the flight's valid seat universe.
const flightQuery = `SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time, f.created_at, f.updated_at, a.airplane_type_id
	FROM flights f JOIN airplanes a ON a.id = f.airplane_id`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightQuery+` ORDER BY f.departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.CreatedAt, &f.UpdatedAt, &f.AirplaneTypeID); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, flightQuery+` WHERE f.id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.CreatedAt, &f.UpdatedAt, &f.AirplaneTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	crewRows, err := r.db.Query(ctx, `SELECT crew_id FROM flight_crews WHERE flight_id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()
	for crewRows.Next() {
		var crewID uuid.UUID
		if err := crewRows.Scan(&crewID); err != nil {
			return nil, err
		}
		f.CrewIDs = append(f.CrewIDs, crewID)
	}
	return &f, crewRows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt); err != nil {
		return err
	}
	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return err
		}
	}
	if err := tx.QueryRow(ctx, `SELECT airplane_type_id FROM airplanes WHERE id=$1`, flight.AirplaneID).
		Scan(&flight.AirplaneTypeID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4, updated_at=now()
		WHERE id=$5 RETURNING created_at, updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID)
	if err := row.Scan(&flight.CreatedAt, &flight.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
