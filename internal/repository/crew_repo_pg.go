package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type CrewRepository interface {
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Crew, error)
	Create(ctx context.Context, crew *domain.Crew) error
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, created_at, updated_at FROM crews ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Crew, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, created_at, updated_at FROM crews WHERE id=$1`, id)
	var c domain.Crew
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	return r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, crew.FirstName, crew.LastName).
		Scan(&crew.ID, &crew.CreatedAt, &crew.UpdatedAt)
}

func (r *PGCrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	row := r.db.QueryRow(ctx, `UPDATE crews SET first_name=$1, last_name=$2, updated_at=now() WHERE id=$3
		RETURNING created_at, updated_at`, crew.FirstName, crew.LastName, crew.ID)
	if err := row.Scan(&crew.CreatedAt, &crew.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PGCrewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM crews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
