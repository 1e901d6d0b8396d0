package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viaaberta/viaaberta/internal/domain"
)

type CategoryRepo struct {
	db querier
}

func NewCategoryRepo(db querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, type, description, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		c.ID, c.Name, c.Type, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if isPgErr(err, codeUniqueViolation) {
		return fmt.Errorf("categoryRepo.Create: name %s: %w", c.Name, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("categoryRepo.Create: %w", err)
	}

	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c domain.Category

	err := r.db.QueryRow(ctx,
		`SELECT id, name, type, COALESCE(description, ''), created_at, updated_at
		 FROM categories WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Type, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("categoryRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.GetByID: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, type, COALESCE(description, ''), created_at, updated_at
		 FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.List: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("categoryRepo.List: scan: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categoryRepo.List: rows: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, type = $2, description = NULLIF($3, ''), updated_at = now()
		 WHERE id = $4`,
		c.Name, c.Type, c.Description, c.ID,
	)
	if isPgErr(err, codeUniqueViolation) {
		return fmt.Errorf("categoryRepo.Update: name %s: %w", c.Name, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("categoryRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("categoryRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("categoryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("categoryRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}
