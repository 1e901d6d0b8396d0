package report_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock Store
// ---------------------------------------------------------------------------

type mockStore struct {
	users      domain.UserRepository
	locations  domain.LocationRepository
	categories domain.CategoryRepository
	reports    domain.ReportRepository
	history    domain.StatusHistoryRepository
	inTxFunc   func(ctx context.Context, fn func(tx domain.Store) error) error
}

func (m *mockStore) Users() domain.UserRepository            { return m.users }
func (m *mockStore) Locations() domain.LocationRepository    { return m.locations }
func (m *mockStore) Categories() domain.CategoryRepository   { return m.categories }
func (m *mockStore) Reports() domain.ReportRepository        { return m.reports }
func (m *mockStore) History() domain.StatusHistoryRepository { return m.history }

func (m *mockStore) InTx(ctx context.Context, fn func(tx domain.Store) error) error {
	if m.inTxFunc != nil {
		return m.inTxFunc(ctx, fn)
	}
	return fn(m)
}

// ---------------------------------------------------------------------------
// Mock UserRepository
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	createFunc     func(ctx context.Context, u *domain.User) error
	getByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	listFunc       func(ctx context.Context) ([]*domain.User, error)
	updateFunc     func(ctx context.Context, u *domain.User) error
	deleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.createFunc(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return m.listFunc(ctx)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.updateFunc(ctx, u)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Mock LocationRepository
// ---------------------------------------------------------------------------

type mockLocationRepo struct {
	createFunc  func(ctx context.Context, l *domain.Location) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	listFunc    func(ctx context.Context) ([]*domain.Location, error)
	updateFunc  func(ctx context.Context, l *domain.Location) error
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLocationRepo) Create(ctx context.Context, l *domain.Location) error {
	return m.createFunc(ctx, l)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockLocationRepo) List(ctx context.Context) ([]*domain.Location, error) {
	return m.listFunc(ctx)
}

func (m *mockLocationRepo) Update(ctx context.Context, l *domain.Location) error {
	return m.updateFunc(ctx, l)
}

func (m *mockLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Mock CategoryRepository
// ---------------------------------------------------------------------------

type mockCategoryRepo struct {
	createFunc  func(ctx context.Context, c *domain.Category) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	listFunc    func(ctx context.Context) ([]*domain.Category, error)
	updateFunc  func(ctx context.Context, c *domain.Category) error
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return m.createFunc(ctx, c)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	return m.listFunc(ctx)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	return m.updateFunc(ctx, c)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Mock ReportRepository
// ---------------------------------------------------------------------------

type mockReportRepo struct {
	createFunc          func(ctx context.Context, r *domain.Report) error
	getByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	listFunc            func(ctx context.Context, filter domain.ReportFilter, limit, offset int) ([]*domain.Report, error)
	countFunc           func(ctx context.Context, filter domain.ReportFilter) (int64, error)
	updateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
	deleteFunc          func(ctx context.Context, id uuid.UUID) error
	countByStatusFunc   func(ctx context.Context) (map[domain.ReportStatus]int64, error)
	countByCategoryFunc func(ctx context.Context) ([]*domain.CategoryCount, error)
}

func (m *mockReportRepo) Create(ctx context.Context, r *domain.Report) error {
	return m.createFunc(ctx, r)
}

func (m *mockReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockReportRepo) List(ctx context.Context, filter domain.ReportFilter, limit, offset int) ([]*domain.Report, error) {
	return m.listFunc(ctx, filter, limit, offset)
}

func (m *mockReportRepo) Count(ctx context.Context, filter domain.ReportFilter) (int64, error) {
	return m.countFunc(ctx, filter)
}

func (m *mockReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

func (m *mockReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockReportRepo) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	return m.countByStatusFunc(ctx)
}

func (m *mockReportRepo) CountByCategory(ctx context.Context) ([]*domain.CategoryCount, error) {
	return m.countByCategoryFunc(ctx)
}

// ---------------------------------------------------------------------------
// Mock StatusHistoryRepository
// ---------------------------------------------------------------------------

type mockHistoryRepo struct {
	appendFunc       func(ctx context.Context, e *domain.StatusHistoryEntry) error
	listByReportFunc func(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error)
}

func (m *mockHistoryRepo) Append(ctx context.Context, e *domain.StatusHistoryEntry) error {
	return m.appendFunc(ctx, e)
}

func (m *mockHistoryRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	return m.listByReportFunc(ctx, reportID)
}

// ---------------------------------------------------------------------------
// Mock StatsCache
// ---------------------------------------------------------------------------

type mockStatsCache struct {
	stats         *domain.Statistics
	sets          int
	invalidations int
}

func (m *mockStatsCache) GetStatistics(_ context.Context) (*domain.Statistics, bool) {
	return m.stats, m.stats != nil
}

func (m *mockStatsCache) SetStatistics(_ context.Context, stats *domain.Statistics) {
	m.stats = stats
	m.sets++
}

func (m *mockStatsCache) Invalidate(_ context.Context) {
	m.stats = nil
	m.invalidations++
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func resolvedIdentities(author *domain.User, location *domain.Location, category *domain.Category) (*mockUserRepo, *mockLocationRepo, *mockCategoryRepo) {
	users := &mockUserRepo{
		getByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if author != nil && id == author.ID {
				return author, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	locations := &mockLocationRepo{
		getByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Location, error) {
			if location != nil && id == location.ID {
				return location, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	categories := &mockCategoryRepo{
		getByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Category, error) {
			if category != nil && id == category.ID {
				return category, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	return users, locations, categories
}
