// Package report implements the report lifecycle: creation, status
// transitions, filtered listing, and the append-only status ledger that
// audits every transition.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// createdComment is the ledger comment seeded with every new report.
const createdComment = "report created"

// StatsCache caches the statistics aggregate between report writes.
// *redis.Cache satisfies this interface; a nil cache is an always-miss.
type StatsCache interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, bool)
	SetStatistics(ctx context.Context, stats *domain.Statistics)
	Invalidate(ctx context.Context)
}

// Service owns the write path for report status and ledger entries. Status
// and ledger are only ever written together, inside one transaction, so the
// report's status field always matches the latest ledger entry.
type Service struct {
	store domain.Store
	cache StatsCache
}

func NewService(store domain.Store, cache StatsCache) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{store: store, cache: cache}
}

// noopCache stands in when no cache is configured: every read misses.
type noopCache struct{}

func (noopCache) GetStatistics(context.Context) (*domain.Statistics, bool) { return nil, false }
func (noopCache) SetStatistics(context.Context, *domain.Statistics)       {}
func (noopCache) Invalidate(context.Context)                              {}

// CreateInput carries the caller-supplied fields for a new report. There is
// no status field: every report starts as PENDING.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	AuthorID    uuid.UUID
	LocationID  uuid.UUID
	CategoryID  uuid.UUID
}

// Create files a new report. It resolves the author, location, and category
// references, then creates the report and its initial PENDING ledger entry
// in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Report, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("reportService.Create: title is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("reportService.Create: description is required: %w", domain.ErrValidation)
	}

	author, err := s.store.Users().GetByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("reportService.Create: author %s: %w", input.AuthorID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reportService.Create: %w", err)
	}

	location, err := s.store.Locations().GetByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("reportService.Create: location %s: %w", input.LocationID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reportService.Create: %w", err)
	}

	category, err := s.store.Categories().GetByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("reportService.Create: category %s: %w", input.CategoryID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reportService.Create: %w", err)
	}

	now := time.Now()
	rep := &domain.Report{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       domain.ReportStatusPending,
		ImageURL:     input.ImageURL,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		LocationID:   location.ID,
		LocationName: location.Name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.store.InTx(ctx, func(tx domain.Store) error {
		if err := tx.Reports().Create(ctx, rep); err != nil {
			return err
		}
		return tx.History().Append(ctx, &domain.StatusHistoryEntry{
			ID:        uuid.New(),
			ReportID:  rep.ID,
			Status:    domain.ReportStatusPending,
			Comment:   createdComment,
			UpdatedBy: author.ID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reportService.Create: %w", err)
	}

	s.cache.Invalidate(ctx)
	log.Info().Stringer("report_id", rep.ID).Msg("report created")

	return rep, nil
}

// UpdateStatus transitions a report to newStatus. The ledger entry is
// appended before the report row is touched so the audit trail is written
// first; both writes share one transaction, so neither survives alone. Any
// status may follow any other, including itself — the ledger records what
// happened, it does not police workflow.
func (s *Service) UpdateStatus(ctx context.Context, reportID uuid.UUID, newStatus domain.ReportStatus, comment string, updatedBy uuid.UUID) (*domain.Report, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("reportService.UpdateStatus: unknown status %q: %w", string(newStatus), domain.ErrValidation)
	}

	rep, err := s.store.Reports().GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("reportService.UpdateStatus: report %s: %w", reportID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reportService.UpdateStatus: %w", err)
	}

	if _, err := s.store.Users().GetByID(ctx, updatedBy); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("reportService.UpdateStatus: user %s: %w", updatedBy, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reportService.UpdateStatus: %w", err)
	}

	now := time.Now()

	err = s.store.InTx(ctx, func(tx domain.Store) error {
		if err := tx.History().Append(ctx, &domain.StatusHistoryEntry{
			ID:        uuid.New(),
			ReportID:  reportID,
			Status:    newStatus,
			Comment:   comment,
			UpdatedBy: updatedBy,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return tx.Reports().UpdateStatus(ctx, reportID, newStatus)
	})
	if err != nil {
		return nil, fmt.Errorf("reportService.UpdateStatus: %w", err)
	}

	s.cache.Invalidate(ctx)
	log.Info().
		Stringer("report_id", reportID).
		Str("from", string(rep.Status)).
		Str("to", string(newStatus)).
		Msg("report status updated")

	rep.Status = newStatus
	rep.UpdatedAt = now

	return rep, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	rep, err := s.store.Reports().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reportService.Get: %w", err)
	}
	return rep, nil
}

// List returns one page of reports matching the filter, newest first, plus
// pagination metadata computed from the unpaginated match count.
func (s *Service) List(ctx context.Context, filter domain.ReportFilter, page, limit int) (*domain.Page[*domain.Report], error) {
	page, limit = domain.NormalizePage(page, limit)
	offset := (page - 1) * limit

	total, err := s.store.Reports().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reportService.List: %w", err)
	}

	reports, err := s.store.Reports().List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("reportService.List: %w", err)
	}

	return domain.NewPage(reports, total, page, limit), nil
}

// History returns the report's full status ledger in append order.
func (s *Service) History(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	if _, err := s.store.Reports().GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("reportService.History: %w", err)
	}

	entries, err := s.store.History().ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("reportService.History: %w", err)
	}
	if entries == nil {
		entries = []*domain.StatusHistoryEntry{}
	}

	return entries, nil
}

// Delete removes a report; its ledger entries go with it (FK cascade).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Reports().Delete(ctx, id); err != nil {
		return fmt.Errorf("reportService.Delete: %w", err)
	}

	s.cache.Invalidate(ctx)
	log.Info().Stringer("report_id", id).Msg("report deleted")

	return nil
}

// Statistics aggregates report counts by status and category. The result is
// served from cache when fresh; every report write invalidates it.
func (s *Service) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if stats, ok := s.cache.GetStatistics(ctx); ok {
		return stats, nil
	}

	byStatus, err := s.store.Reports().CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.Statistics: %w", err)
	}

	byCategory, err := s.store.Reports().CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.Statistics: %w", err)
	}
	if byCategory == nil {
		byCategory = []*domain.CategoryCount{}
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	resolutionRate := "0.00%"
	if total > 0 {
		confirmed := byStatus[domain.ReportStatusResolvedConfirmed]
		resolutionRate = fmt.Sprintf("%.2f%%", float64(confirmed)/float64(total)*100)
	}

	stats := &domain.Statistics{
		Total: total,
		ByStatus: domain.StatusCounts{
			Pending:             byStatus[domain.ReportStatusPending],
			InAnalysis:          byStatus[domain.ReportStatusInAnalysis],
			ResolvedProvisional: byStatus[domain.ReportStatusResolvedProvisional],
			ResolvedConfirmed:   byStatus[domain.ReportStatusResolvedConfirmed],
			Archived:            byStatus[domain.ReportStatusArchived],
		},
		ByCategory:     byCategory,
		ResolutionRate: resolutionRate,
	}

	s.cache.SetStatistics(ctx, stats)

	return stats, nil
}
