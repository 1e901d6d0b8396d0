package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viaaberta/viaaberta/internal/domain"
)

type LocationRepo struct {
	db querier
}

func NewLocationRepo(db querier) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) Create(ctx context.Context, l *domain.Location) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO locations (id, name, address, latitude, longitude, type, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`,
		l.ID, l.Name, l.Address, l.Latitude, l.Longitude, l.Type, l.Description,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("locationRepo.Create: %w", err)
	}

	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var l domain.Location

	err := r.db.QueryRow(ctx,
		`SELECT id, name, address, latitude, longitude, type, COALESCE(description, ''), created_at, updated_at
		 FROM locations WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.Type, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("locationRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("locationRepo.GetByID: %w", err)
	}

	return &l, nil
}

func (r *LocationRepo) List(ctx context.Context) ([]*domain.Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, address, latitude, longitude, type, COALESCE(description, ''), created_at, updated_at
		 FROM locations ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("locationRepo.List: %w", err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.Type, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("locationRepo.List: scan: %w", err)
		}
		locations = append(locations, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locationRepo.List: rows: %w", err)
	}

	return locations, nil
}

func (r *LocationRepo) Update(ctx context.Context, l *domain.Location) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE locations SET name = $1, address = $2, latitude = $3, longitude = $4,
		        type = $5, description = NULLIF($6, ''), updated_at = now()
		 WHERE id = $7`,
		l.Name, l.Address, l.Latitude, l.Longitude, l.Type, l.Description, l.ID,
	)
	if err != nil {
		return fmt.Errorf("locationRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("locationRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *LocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("locationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("locationRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}
