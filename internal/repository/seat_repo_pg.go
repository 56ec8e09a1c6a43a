package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type SeatClassRepository interface {
	List(ctx context.Context) ([]domain.SeatClass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SeatClass, error)
	Create(ctx context.Context, sc *domain.SeatClass) error
	Update(ctx context.Context, sc *domain.SeatClass) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGSeatClassRepository struct {
	db *pgxpool.Pool
}

func NewSeatClassRepository(db *pgxpool.Pool) SeatClassRepository {
	return &PGSeatClassRepository{db: db}
}

func (r *PGSeatClassRepository) List(ctx context.Context) ([]domain.SeatClass, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at, updated_at FROM seat_classes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]domain.SeatClass, 0)
	for rows.Next() {
		var sc domain.SeatClass
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, sc)
	}
	return classes, rows.Err()
}

func (r *PGSeatClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SeatClass, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM seat_classes WHERE id=$1`, id)
	var sc domain.SeatClass
	if err := row.Scan(&sc.ID, &sc.Name, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sc, nil
}

func (r *PGSeatClassRepository) Create(ctx context.Context, sc *domain.SeatClass) error {
	return r.db.QueryRow(ctx, `INSERT INTO seat_classes (name) VALUES ($1) RETURNING id, created_at, updated_at`, sc.Name).
		Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
}

func (r *PGSeatClassRepository) Update(ctx context.Context, sc *domain.SeatClass) error {
	row := r.db.QueryRow(ctx, `UPDATE seat_classes SET name=$1, updated_at=now() WHERE id=$2 RETURNING created_at, updated_at`, sc.Name, sc.ID)
	if err := row.Scan(&sc.CreatedAt, &sc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PGSeatClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM seat_classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ SeatClassRepository = (*PGSeatClassRepository)(nil)

type SeatRepository interface {
	List(ctx context.Context) ([]domain.Seat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seat, error)
	// ListByAirplaneType returns the full seat template set for one
	// airplane type, ordered by row and letter.
	ListByAirplaneType(ctx context.Context, airplaneTypeID uuid.UUID) ([]domain.Seat, error)
	// ExistingIDsForType narrows the given seat IDs to the ones that exist
	// and belong to the airplane type. Seat IDs missing from the result
	// are invalid for a flight of that type.
	ExistingIDsForType(ctx context.Context, airplaneTypeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, seat *domain.Seat) error
	Update(ctx context.Context, seat *domain.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGSeatRepository struct {
	db *pgxpool.Pool
}

func NewSeatRepository(db *pgxpool.Pool) SeatRepository {
	return &PGSeatRepository{db: db}
}

const seatColumns = `id, airplane_type_id, row, letter, seat_class_id, created_at, updated_at`

func scanSeat(row pgx.Row, s *domain.Seat) error {
	return row.Scan(&s.ID, &s.AirplaneTypeID, &s.Row, &s.Letter, &s.SeatClassID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PGSeatRepository) List(ctx context.Context) ([]domain.Seat, error) {
	rows, err := r.db.Query(ctx, `SELECT `+seatColumns+` FROM seats ORDER BY row, letter`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

func (r *PGSeatRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seat, error) {
	var s domain.Seat
	if err := scanSeat(r.db.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats WHERE id=$1`, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGSeatRepository) ListByAirplaneType(ctx context.Context, airplaneTypeID uuid.UUID) ([]domain.Seat, error) {
	rows, err := r.db.Query(ctx, `SELECT `+seatColumns+` FROM seats WHERE airplane_type_id=$1 ORDER BY row, letter`, airplaneTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

func (r *PGSeatRepository) ExistingIDsForType(ctx context.Context, airplaneTypeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM seats WHERE airplane_type_id=$1 AND id = ANY($2)`, airplaneTypeID, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, len(seatIDs))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGSeatRepository) Create(ctx context.Context, seat *domain.Seat) error {
	err := r.db.QueryRow(ctx, `INSERT INTO seats (airplane_type_id, row, letter, seat_class_id) VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, seat.AirplaneTypeID, seat.Row, seat.Letter, seat.SeatClassID).
		Scan(&seat.ID, &seat.CreatedAt, &seat.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *PGSeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	row := r.db.QueryRow(ctx, `UPDATE seats SET airplane_type_id=$1, row=$2, letter=$3, seat_class_id=$4, updated_at=now() WHERE id=$5
		RETURNING created_at, updated_at`, seat.AirplaneTypeID, seat.Row, seat.Letter, seat.SeatClassID, seat.ID)
	if err := row.Scan(&seat.CreatedAt, &seat.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PGSeatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM seats WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectSeats(rows pgx.Rows) ([]domain.Seat, error) {
	seats := make([]domain.Seat, 0)
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.AirplaneTypeID, &s.Row, &s.Letter, &s.SeatClassID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

var _ SeatRepository = (*PGSeatRepository)(nil)
