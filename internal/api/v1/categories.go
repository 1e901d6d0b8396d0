package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/viaaberta/viaaberta/internal/domain"
)

type CreateCategoryInput struct {
	Body struct {
		Name        string `json:"name" minLength:"1" maxLength:"255" doc:"Unique category name"`
		Type        string `json:"type" enum:"RAMP,TACTILE_FLOOR,ELEVATOR,SIGNAGE,ACCESSIBILITY,INFRASTRUCTURE,OTHER" doc:"Obstacle kind"`
		Description string `json:"description,omitempty"`
	}
}

type CreateCategoryOutput struct {
	Body *domain.Category
}

type GetCategoryInput struct {
	ID uuid.UUID `path:"id" doc:"Category ID"`
}

type GetCategoryOutput struct {
	Body *domain.Category
}

type ListCategoriesOutput struct {
	Body []*domain.Category
}

type UpdateCategoryInput struct {
	ID   uuid.UUID `path:"id" doc:"Category ID"`
	Body struct {
		Name        string `json:"name" minLength:"1" maxLength:"255" doc:"Unique category name"`
		Type        string `json:"type" enum:"RAMP,TACTILE_FLOOR,ELEVATOR,SIGNAGE,ACCESSIBILITY,INFRASTRUCTURE,OTHER" doc:"Obstacle kind"`
		Description string `json:"description,omitempty"`
	}
}

type UpdateCategoryOutput struct {
	Body *domain.Category
}

type DeleteCategoryInput struct {
	ID uuid.UUID `path:"id" doc:"Category ID"`
}

func RegisterCategoryRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Register a new obstacle category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
		now := time.Now()
		cat := &domain.Category{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(input.Body.Name),
			Type:        domain.CategoryType(input.Body.Type),
			Description: input.Body.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := store.Categories().Create(ctx, cat); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("category name already exists", err)
			}
			return nil, huma.Error500InternalServerError("failed to create category", err)
		}

		return &CreateCategoryOutput{Body: cat}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get a category by ID",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
		cat, err := store.Categories().GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("category not found")
			}
			return nil, huma.Error500InternalServerError("failed to get category", err)
		}

		return &GetCategoryOutput{Body: cat}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List all categories",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
		cats, err := store.Categories().List(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list categories", err)
		}
		if cats == nil {
			cats = []*domain.Category{}
		}

		return &ListCategoriesOutput{Body: cats}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/categories/{id}",
		Summary:     "Update a category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
		cat, err := store.Categories().GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("category not found")
			}
			return nil, huma.Error500InternalServerError("failed to get category", err)
		}

		cat.Name = strings.TrimSpace(input.Body.Name)
		cat.Type = domain.CategoryType(input.Body.Type)
		cat.Description = input.Body.Description
		cat.UpdatedAt = time.Now()

		if err := store.Categories().Update(ctx, cat); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("category name already exists", err)
			}
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("category not found")
			}
			return nil, huma.Error500InternalServerError("failed to update category", err)
		}

		return &UpdateCategoryOutput{Body: cat}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete a category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
		if err := store.Categories().Delete(ctx, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("category not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete category", err)
		}

		return nil, nil
	})
}
