package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusHistoryEntry is one event in a report's append-only status ledger.
// Entries are immutable once appended and never deleted independently of
// their report (deleting a report cascades to its ledger).
type StatusHistoryEntry struct {
	ID            uuid.UUID    `json:"id"`
	ReportID      uuid.UUID    `json:"reportId"`
	Status        ReportStatus `json:"status"`
	Comment       string       `json:"comment,omitempty"`
	UpdatedBy     uuid.UUID    `json:"updatedBy"`
	UpdatedByName string       `json:"updatedByName,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type StatusHistoryRepository interface {
	Append(ctx context.Context, e *StatusHistoryEntry) error
	// ListByReport returns the ledger in append order (oldest first).
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*StatusHistoryEntry, error)
}
