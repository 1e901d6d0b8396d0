package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/viaaberta/viaaberta/internal/domain"
	"github.com/viaaberta/viaaberta/internal/report"
)

// DataStore abstracts the repository accessor pattern for handler testing.
// *postgres.Store satisfies this interface.
type DataStore interface {
	Users() domain.UserRepository
	Locations() domain.LocationRepository
	Categories() domain.CategoryRepository
}

// ReportService abstracts the report lifecycle for handler testing.
// *report.Service satisfies this interface.
type ReportService interface {
	Create(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter, page, limit int) (*domain.Page[*domain.Report], error)
	UpdateStatus(ctx context.Context, reportID uuid.UUID, newStatus domain.ReportStatus, comment string, updatedBy uuid.UUID) (*domain.Report, error)
	History(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
