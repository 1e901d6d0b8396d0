package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// StatusHistoryRepo is the append-only status ledger. Entries are never
// updated or deleted here; the only delete path is the FK cascade when a
// report is removed.
type StatusHistoryRepo struct {
	db querier
}

func NewStatusHistoryRepo(db querier) *StatusHistoryRepo {
	return &StatusHistoryRepo{db: db}
}

func (r *StatusHistoryRepo) Append(ctx context.Context, e *domain.StatusHistoryEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO status_history (id, report_id, status, comment, updated_by, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		e.ID, e.ReportID, e.Status, e.Comment, e.UpdatedBy, e.CreatedAt,
	)
	if isPgErr(err, codeForeignKeyViolation) {
		return fmt.Errorf("statusHistoryRepo.Append: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("statusHistoryRepo.Append: %w", err)
	}

	return nil
}

func (r *StatusHistoryRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT h.id, h.report_id, h.status, COALESCE(h.comment, ''), h.updated_by, u.name, h.created_at
		 FROM status_history h
		 JOIN users u ON u.id = h.updated_by
		 WHERE h.report_id = $1
		 ORDER BY h.seq`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("statusHistoryRepo.ListByReport: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows, "statusHistoryRepo.ListByReport")
}

func scanHistory(rows pgx.Rows, caller string) ([]*domain.StatusHistoryEntry, error) {
	var entries []*domain.StatusHistoryEntry
	for rows.Next() {
		var e domain.StatusHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.ReportID, &e.Status, &e.Comment,
			&e.UpdatedBy, &e.UpdatedByName, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", caller, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", caller, err)
	}

	return entries, nil
}
