package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeRamp           CategoryType = "RAMP"
	CategoryTypeTactileFloor   CategoryType = "TACTILE_FLOOR"
	CategoryTypeElevator       CategoryType = "ELEVATOR"
	CategoryTypeSignage        CategoryType = "SIGNAGE"
	CategoryTypeAccessibility  CategoryType = "ACCESSIBILITY"
	CategoryTypeInfrastructure CategoryType = "INFRASTRUCTURE"
	CategoryTypeOther          CategoryType = "OTHER"
)

func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeRamp, CategoryTypeTactileFloor, CategoryTypeElevator,
		CategoryTypeSignage, CategoryTypeAccessibility, CategoryTypeInfrastructure,
		CategoryTypeOther:
		return true
	default:
		return false
	}
}

type Category struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
