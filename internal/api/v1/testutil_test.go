package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/viaaberta/viaaberta/internal/domain"
	"github.com/viaaberta/viaaberta/internal/report"
)

// ---------------------------------------------------------------------------
// Mock DataStore
// ---------------------------------------------------------------------------

type mockDataStore struct {
	users      *mockUserRepo
	locations  *mockLocationRepo
	categories *mockCategoryRepo
}

func (m *mockDataStore) Users() domain.UserRepository          { return m.users }
func (m *mockDataStore) Locations() domain.LocationRepository  { return m.locations }
func (m *mockDataStore) Categories() domain.CategoryRepository { return m.categories }

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
// Mock ReportService
// ---------------------------------------------------------------------------

type mockReportService struct {
	createFunc       func(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	getFunc          func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	listFunc         func(ctx context.Context, filter domain.ReportFilter, page, limit int) (*domain.Page[*domain.Report], error)
	updateStatusFunc func(ctx context.Context, reportID uuid.UUID, status domain.ReportStatus, comment string, updatedBy uuid.UUID) (*domain.Report, error)
	historyFunc      func(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error)
	deleteFunc       func(ctx context.Context, id uuid.UUID) error
	statisticsFunc   func(ctx context.Context) (*domain.Statistics, error)
}

func (m *mockReportService) Create(ctx context.Context, input report.CreateInput) (*domain.Report, error) {
	return m.createFunc(ctx, input)
}

func (m *mockReportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return m.getFunc(ctx, id)
}

func (m *mockReportService) List(ctx context.Context, filter domain.ReportFilter, page, limit int) (*domain.Page[*domain.Report], error) {
	return m.listFunc(ctx, filter, page, limit)
}

func (m *mockReportService) UpdateStatus(ctx context.Context, reportID uuid.UUID, status domain.ReportStatus, comment string, updatedBy uuid.UUID) (*domain.Report, error) {
	return m.updateStatusFunc(ctx, reportID, status, comment, updatedBy)
}

func (m *mockReportService) History(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	return m.historyFunc(ctx, reportID)
}

func (m *mockReportService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockReportService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return m.statisticsFunc(ctx)
}
