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

type CreateLocationInput struct {
	Body struct {
		Name        string  `json:"name" minLength:"1" maxLength:"255" doc:"Location name"`
		Address     string  `json:"address" minLength:"1" doc:"Street address"`
		Latitude    float64 `json:"latitude" minimum:"-90" maximum:"90"`
		Longitude   float64 `json:"longitude" minimum:"-180" maximum:"180"`
		Type        string  `json:"type" minLength:"1" doc:"Kind of place, e.g. BUS_STOP"`
		Description string  `json:"description,omitempty"`
	}
}

type CreateLocationOutput struct {
	Body *domain.Location
}

type GetLocationInput struct {
	ID uuid.UUID `path:"id" doc:"Location ID"`
}

type GetLocationOutput struct {
	Body *domain.Location
}

type ListLocationsOutput struct {
	Body []*domain.Location
}

type UpdateLocationInput struct {
	ID   uuid.UUID `path:"id" doc:"Location ID"`
	Body struct {
		Name        string  `json:"name" minLength:"1" maxLength:"255" doc:"Location name"`
		Address     string  `json:"address" minLength:"1" doc:"Street address"`
		Latitude    float64 `json:"latitude" minimum:"-90" maximum:"90"`
		Longitude   float64 `json:"longitude" minimum:"-180" maximum:"180"`
		Type        string  `json:"type" minLength:"1" doc:"Kind of place, e.g. BUS_STOP"`
		Description string  `json:"description,omitempty"`
	}
}

type UpdateLocationOutput struct {
	Body *domain.Location
}

type DeleteLocationInput struct {
	ID uuid.UUID `path:"id" doc:"Location ID"`
}

func RegisterLocationRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-location",
		Method:      http.MethodPost,
		Path:        "/locations",
		Summary:     "Register a new location",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, input *CreateLocationInput) (*CreateLocationOutput, error) {
		now := time.Now()
		loc := &domain.Location{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(input.Body.Name),
			Address:     strings.TrimSpace(input.Body.Address),
			Latitude:    input.Body.Latitude,
			Longitude:   input.Body.Longitude,
			Type:        input.Body.Type,
			Description: input.Body.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := store.Locations().Create(ctx, loc); err != nil {
			return nil, huma.Error500InternalServerError("failed to create location", err)
		}

		return &CreateLocationOutput{Body: loc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/locations/{id}",
		Summary:     "Get a location by ID",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error) {
		loc, err := store.Locations().GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("location not found")
			}
			return nil, huma.Error500InternalServerError("failed to get location", err)
		}

		return &GetLocationOutput{Body: loc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/locations",
		Summary:     "List all locations",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, _ *struct{}) (*ListLocationsOutput, error) {
		locs, err := store.Locations().List(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list locations", err)
		}
		if locs == nil {
			locs = []*domain.Location{}
		}

		return &ListLocationsOutput{Body: locs}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-location",
		Method:      http.MethodPut,
		Path:        "/locations/{id}",
		Summary:     "Update a location",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, input *UpdateLocationInput) (*UpdateLocationOutput, error) {
		loc, err := store.Locations().GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("location not found")
			}
			return nil, huma.Error500InternalServerError("failed to get location", err)
		}

		loc.Name = strings.TrimSpace(input.Body.Name)
		loc.Address = strings.TrimSpace(input.Body.Address)
		loc.Latitude = input.Body.Latitude
		loc.Longitude = input.Body.Longitude
		loc.Type = input.Body.Type
		loc.Description = input.Body.Description
		loc.UpdatedAt = time.Now()

		if err := store.Locations().Update(ctx, loc); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("location not found")
			}
			return nil, huma.Error500InternalServerError("failed to update location", err)
		}

		return &UpdateLocationOutput{Body: loc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-location",
		Method:      http.MethodDelete,
		Path:        "/locations/{id}",
		Summary:     "Delete a location",
		Tags:        []string{"Locations"},
	}, func(ctx context.Context, input *DeleteLocationInput) (*struct{}, error) {
		if err := store.Locations().Delete(ctx, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("location not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete location", err)
		}

		return nil, nil
	})
}
