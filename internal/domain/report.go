package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusPending             ReportStatus = "PENDING"
	ReportStatusInAnalysis          ReportStatus = "IN_ANALYSIS"
	ReportStatusResolvedProvisional ReportStatus = "RESOLVED_PROVISIONAL"
	ReportStatusResolvedConfirmed   ReportStatus = "RESOLVED_CONFIRMED"
	ReportStatusArchived            ReportStatus = "ARCHIVED"
)

// Valid reports whether s is one of the five known status tokens.
// Tokens are case-sensitive and must round-trip exactly through JSON.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInAnalysis, ReportStatusResolvedProvisional,
		ReportStatusResolvedConfirmed, ReportStatusArchived:
		return true
	default:
		return false
	}
}

// Report is a filed accessibility issue tied to one location and one category.
// Status is a cached "current value"; the status history ledger is the
// audit-of-record. The two are only ever written together inside one
// transaction, so Status always equals the latest ledger entry.
type Report struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       ReportStatus `json:"status"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	AuthorID     uuid.UUID    `json:"authorId"`
	AuthorName   string       `json:"authorName,omitempty"`
	LocationID   uuid.UUID    `json:"locationId"`
	LocationName string       `json:"locationName,omitempty"`
	CategoryID   uuid.UUID    `json:"categoryId"`
	CategoryName string       `json:"categoryName,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// ReportFilter narrows List/Count. Zero-valued fields match everything;
// set fields are ANDed together.
type ReportFilter struct {
	Status     ReportStatus
	LocationID *uuid.UUID
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
}

type ReportRepository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	// List returns one page of matching reports, newest first.
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]*Report, error)
	// Count returns the number of matching reports ignoring pagination.
	Count(ctx context.Context, filter ReportFilter) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ReportStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[ReportStatus]int64, error)
	CountByCategory(ctx context.Context) ([]*CategoryCount, error)
}
