package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type OrderRepository interface {
	// CreateBooking writes one order plus one ticket per seat as a single
	// atomic unit. Either all rows commit or none do. A unique-constraint
	// conflict on (flight_id, seat_id) surfaces as ErrSeatsAlreadyBooked
	// with the contested seat IDs; a flight that departed since validation
	// surfaces as ErrFlightDeparted.
	CreateBooking(ctx context.Context, userID, flightID uuid.UUID, seatIDs []uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) CreateBooking(ctx context.Context, userID, flightID uuid.UUID, seatIDs []uuid.UUID) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The departure check from validation is repeated inside the
	// transaction window so a flight departing between request receipt
	// and commit still rejects.
	var departure time.Time
	if err := tx.QueryRow(ctx, `SELECT departure_time FROM flights WHERE id=$1`, flightID).Scan(&departure); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	if !departure.After(time.Now()) {
		return nil, domain.ErrFlightDeparted
	}

	// Lock any existing tickets for the requested seats. Failing here is
	// a cleaner path than the constraint violation below, but the unique
	// index remains the final arbiter for writers that race past this.
	rows, err := tx.Query(ctx, `SELECT seat_id FROM tickets WHERE flight_id=$1 AND seat_id = ANY($2) FOR UPDATE`, flightID, seatIDs)
	if err != nil {
		return nil, err
	}
	taken := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		taken = append(taken, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, domain.BookedSeats(taken)
	}

	order := &domain.Order{UserID: userID}
	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at, updated_at`, userID).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}

	order.Tickets = make([]domain.Ticket, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		t := domain.Ticket{FlightID: flightID, SeatID: seatID, OrderID: order.ID}
		err := tx.QueryRow(ctx, `INSERT INTO tickets (flight_id, seat_id, order_id) VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`, flightID, seatID, order.ID).
			Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				// Another booking committed this seat between our lock
				// query and the insert. The rollback discards the order
				// and any tickets written so far.
				return nil, domain.BookedSeats([]uuid.UUID{seatID})
			}
			return nil, err
		}
		order.Tickets = append(order.Tickets, t)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.BookedSeats(seatIDs)
		}
		return nil, err
	}
	return order, nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, created_at, updated_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Tickets = make([]domain.Ticket, 0)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	trows, err := r.db.Query(ctx, `SELECT id, flight_id, seat_id, order_id, created_at, updated_at
		FROM tickets WHERE order_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var t domain.Ticket
		if err := trows.Scan(&t.ID, &t.FlightID, &t.SeatID, &t.OrderID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[t.OrderID]; ok {
			orders[i].Tickets = append(orders[i].Tickets, t)
		}
	}
	return orders, trows.Err()
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, created_at, updated_at FROM orders WHERE id=$1`, id)
	var o domain.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	trows, err := r.db.Query(ctx, `SELECT id, flight_id, seat_id, order_id, created_at, updated_at FROM tickets WHERE order_id=$1 ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	o.Tickets = make([]domain.Ticket, 0)
	for trows.Next() {
		var t domain.Ticket
		if err := trows.Scan(&t.ID, &t.FlightID, &t.SeatID, &t.OrderID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		o.Tickets = append(o.Tickets, t)
	}
	return &o, trows.Err()
}

// Delete removes the order and, via ON DELETE CASCADE, its tickets.
func (r *PGOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
