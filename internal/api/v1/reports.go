package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/viaaberta/viaaberta/internal/domain"
	"github.com/viaaberta/viaaberta/internal/report"
)

type CreateReportInput struct {
	Body struct {
		Title       string    `json:"title" minLength:"1" maxLength:"500" doc:"Report title"`
		Description string    `json:"description" minLength:"1" doc:"What is blocking accessibility"`
		ImageURL    string    `json:"imageUrl,omitempty" doc:"Optional image or video URL"`
		AuthorID    uuid.UUID `json:"authorId" doc:"Reporting user ID"`
		LocationID  uuid.UUID `json:"locationId" doc:"Location ID"`
		CategoryID  uuid.UUID `json:"categoryId" doc:"Category ID"`
	}
}

type CreateReportOutput struct {
	Body *domain.Report
}

type ListReportsInput struct {
	Status     string    `query:"status" doc:"Filter by current status"`
	LocationID uuid.UUID `query:"locationId" doc:"Filter by location"`
	CategoryID uuid.UUID `query:"categoryId" doc:"Filter by category"`
	AuthorID   uuid.UUID `query:"authorId" doc:"Filter by author"`
	Page       int       `query:"page" doc:"Page number, 1-based (default 1)"`
	Limit      int       `query:"limit" doc:"Page size (default 10)"`
}

type ListReportsOutput struct {
	Body *domain.Page[*domain.Report]
}

type GetReportInput struct {
	ID uuid.UUID `path:"id" doc:"Report ID"`
}

type GetReportOutput struct {
	Body *domain.Report
}

type UpdateReportStatusInput struct {
	ID   uuid.UUID `path:"id" doc:"Report ID"`
	Body struct {
		Status    string    `json:"status" minLength:"1" doc:"Target status"`
		Comment   string    `json:"comment,omitempty" doc:"Optional note explaining the transition"`
		UpdatedBy uuid.UUID `json:"updatedBy" doc:"User performing the transition"`
	}
}

type UpdateReportStatusOutput struct {
	Body *domain.Report
}

type ReportHistoryInput struct {
	ID uuid.UUID `path:"id" doc:"Report ID"`
}

type ReportHistoryOutput struct {
	Body []*domain.StatusHistoryEntry
}

type DeleteReportInput struct {
	ID uuid.UUID `path:"id" doc:"Report ID"`
}

type ReportStatisticsOutput struct {
	Body *domain.Statistics
}

func RegisterReportRoutes(api huma.API, svc ReportService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-report",
		Method:      http.MethodPost,
		Path:        "/reports",
		Summary:     "File a new accessibility report",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *CreateReportInput) (*CreateReportOutput, error) {
		rep, err := svc.Create(ctx, report.CreateInput{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			ImageURL:    input.Body.ImageURL,
			AuthorID:    input.Body.AuthorID,
			LocationID:  input.Body.LocationID,
			CategoryID:  input.Body.CategoryID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("referenced entity not found", err)
			}
			if errors.Is(err, domain.ErrValidation) {
				return nil, huma.Error422UnprocessableEntity("invalid report", err)
			}
			return nil, huma.Error500InternalServerError("failed to create report", err)
		}

		return &CreateReportOutput{Body: rep}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/reports",
		Summary:     "List reports with optional filters",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error) {
		filter := domain.ReportFilter{}

		if input.Status != "" {
			status := domain.ReportStatus(input.Status)
			if !status.Valid() {
				return nil, huma.Error422UnprocessableEntity("unknown status: " + input.Status)
			}
			filter.Status = status
		}
		if input.LocationID != uuid.Nil {
			id := input.LocationID
			filter.LocationID = &id
		}
		if input.CategoryID != uuid.Nil {
			id := input.CategoryID
			filter.CategoryID = &id
		}
		if input.AuthorID != uuid.Nil {
			id := input.AuthorID
			filter.AuthorID = &id
		}

		page, err := svc.List(ctx, filter, input.Page, input.Limit)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list reports", err)
		}

		return &ListReportsOutput{Body: page}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-report-statistics",
		Method:      http.MethodGet,
		Path:        "/reports/statistics",
		Summary:     "Aggregate report counts by status and category",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, _ *struct{}) (*ReportStatisticsOutput, error) {
		stats, err := svc.Statistics(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to compute statistics", err)
		}

		return &ReportStatisticsOutput{Body: stats}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/reports/{id}",
		Summary:     "Get a report by ID",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
		rep, err := svc.Get(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("report not found")
			}
			return nil, huma.Error500InternalServerError("failed to get report", err)
		}

		return &GetReportOutput{Body: rep}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-report-status",
		Method:      http.MethodPatch,
		Path:        "/reports/{id}/status",
		Summary:     "Transition a report's status",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *UpdateReportStatusInput) (*UpdateReportStatusOutput, error) {
		rep, err := svc.UpdateStatus(ctx, input.ID, domain.ReportStatus(input.Body.Status), input.Body.Comment, input.Body.UpdatedBy)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("referenced entity not found", err)
			}
			if errors.Is(err, domain.ErrValidation) {
				return nil, huma.Error422UnprocessableEntity("invalid status transition request", err)
			}
			return nil, huma.Error500InternalServerError("failed to update report status", err)
		}

		return &UpdateReportStatusOutput{Body: rep}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-report-history",
		Method:      http.MethodGet,
		Path:        "/reports/{id}/history",
		Summary:     "Get a report's status history, oldest first",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *ReportHistoryInput) (*ReportHistoryOutput, error) {
		entries, err := svc.History(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("report not found")
			}
			return nil, huma.Error500InternalServerError("failed to get report history", err)
		}

		return &ReportHistoryOutput{Body: entries}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-report",
		Method:      http.MethodDelete,
		Path:        "/reports/{id}",
		Summary:     "Delete a report and its status history",
		Tags:        []string{"Reports"},
	}, func(ctx context.Context, input *DeleteReportInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("report not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete report", err)
		}

		return nil, nil
	})
}
