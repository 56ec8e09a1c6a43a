package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

// TicketRepository is the read side of the ticket ledger. Tickets are only
// ever created through OrderRepository.CreateBooking.
type TicketRepository interface {
	// SeatIDsByFlight returns the seat IDs of every committed ticket on
	// the flight, i.e. the occupied part of the seat universe.
	SeatIDsByFlight(ctx context.Context, flightID uuid.UUID) ([]uuid.UUID, error)
	// BookedAmong narrows the given seat IDs to the ones already ticketed
	// on the flight.
	BookedAmong(ctx context.Context, flightID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) SeatIDsByFlight(ctx context.Context, flightID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT seat_id FROM tickets WHERE flight_id=$1`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGTicketRepository) BookedAmong(ctx context.Context, flightID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT seat_id FROM tickets WHERE flight_id=$1 AND seat_id = ANY($2)`, flightID, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT t.id, t.flight_id, t.seat_id, t.order_id, t.created_at, t.updated_at
		FROM tickets t JOIN orders o ON o.id = t.order_id
		WHERE o.user_id=$1 ORDER BY t.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.FlightID, &t.SeatID, &t.OrderID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
