package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error)
	Create(ctx context.Context, at *domain.AirplaneType) error
	Update(ctx context.Context, at *domain.AirplaneType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, rows, seats_in_row, created_at, updated_at FROM airplane_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var at domain.AirplaneType
		if err := rows.Scan(&at.ID, &at.Name, &at.Rows, &at.SeatsInRow, &at.CreatedAt, &at.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, at)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, rows, seats_in_row, created_at, updated_at FROM airplane_types WHERE id=$1`, id)
	var at domain.AirplaneType
	if err := row.Scan(&at.ID, &at.Name, &at.Rows, &at.SeatsInRow, &at.CreatedAt, &at.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &at, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, at *domain.AirplaneType) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplane_types (name, rows, seats_in_row) VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, at.Name, at.Rows, at.SeatsInRow).
		Scan(&at.ID, &at.CreatedAt, &at.UpdatedAt)
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, at *domain.AirplaneType) error {
	row := r.db.QueryRow(ctx, `UPDATE airplane_types SET name=$1, rows=$2, seats_in_row=$3, updated_at=now() WHERE id=$4
		RETURNING created_at, updated_at`, at.Name, at.Rows, at.SeatsInRow, at.ID)
	if err := row.Scan(&at.CreatedAt, &at.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airplane_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Airplane, error)
	Create(ctx context.Context, airplane *domain.Airplane) error
	Update(ctx context.Context, airplane *domain.Airplane) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, airplane_type_id, created_at, updated_at FROM airplanes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.AirplaneTypeID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, airplane_type_id, created_at, updated_at FROM airplanes WHERE id=$1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.AirplaneTypeID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (name, airplane_type_id) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, airplane.Name, airplane.AirplaneTypeID).
		Scan(&airplane.ID, &airplane.CreatedAt, &airplane.UpdatedAt)
}

func (r *PGAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	row := r.db.QueryRow(ctx, `UPDATE airplanes SET name=$1, airplane_type_id=$2, updated_at=now() WHERE id=$3
		RETURNING created_at, updated_at`, airplane.Name, airplane.AirplaneTypeID, airplane.ID)
	if err := row.Scan(&airplane.CreatedAt, &airplane.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
