package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkravets/airport-service/internal/domain"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT id, source_id, destination_id, distance, created_at, updated_at FROM routes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT id, source_id, destination_id, distance, created_at, updated_at FROM routes WHERE id=$1`, id)
	var rt domain.Route
	if err := row.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	return r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, route.SourceID, route.DestinationID, route.Distance).
		Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	row := r.db.QueryRow(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3, updated_at=now() WHERE id=$4
		RETURNING created_at, updated_at`, route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err := row.Scan(&route.CreatedAt, &route.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
