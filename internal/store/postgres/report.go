package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viaaberta/viaaberta/internal/domain"
)

type ReportRepo struct {
	db querier
}

func NewReportRepo(db querier) *ReportRepo {
	return &ReportRepo{db: db}
}

const reportColumns = `r.id, r.title, r.description, r.status, COALESCE(r.image_url, ''),
	        r.author_id, u.name, r.location_id, l.name, r.category_id, c.name,
	        r.created_at, r.updated_at`

const reportJoins = `
	 FROM reports r
	 JOIN users u ON u.id = r.author_id
	 JOIN locations l ON l.id = r.location_id
	 JOIN categories c ON c.id = r.category_id`

func (r *ReportRepo) Create(ctx context.Context, rep *domain.Report) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reports (id, title, description, status, image_url, author_id, location_id, category_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)`,
		rep.ID, rep.Title, rep.Description, rep.Status, rep.ImageURL,
		rep.AuthorID, rep.LocationID, rep.CategoryID,
		rep.CreatedAt, rep.UpdatedAt,
	)
	if isPgErr(err, codeForeignKeyViolation) {
		return fmt.Errorf("reportRepo.Create: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reportRepo.Create: %w", err)
	}

	return nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var rep domain.Report

	err := r.db.QueryRow(ctx,
		`SELECT `+reportColumns+reportJoins+`
		 WHERE r.id = $1`,
		id,
	).Scan(
		&rep.ID, &rep.Title, &rep.Description, &rep.Status, &rep.ImageURL,
		&rep.AuthorID, &rep.AuthorName, &rep.LocationID, &rep.LocationName,
		&rep.CategoryID, &rep.CategoryName, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reportRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reportRepo.GetByID: %w", err)
	}

	return &rep, nil
}

func (r *ReportRepo) List(ctx context.Context, filter domain.ReportFilter, limit, offset int) ([]*domain.Report, error) {
	where, args := filterClause(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+reportColumns+reportJoins+where+
			fmt.Sprintf(`
		 ORDER BY r.created_at DESC
		 LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.List: %w", err)
	}
	defer rows.Close()

	return scanReports(rows, "reportRepo.List")
}

func (r *ReportRepo) Count(ctx context.Context, filter domain.ReportFilter) (int64, error) {
	where, args := filterClause(filter)

	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM reports r`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("reportRepo.Count: %w", err)
	}

	return total, nil
}

func (r *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reports SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("reportRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reportRepo.UpdateStatus: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("reportRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reportRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ReportRepo) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM reports GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.CountByStatus: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ReportStatus]int64)
	for rows.Next() {
		var status domain.ReportStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("reportRepo.CountByStatus: scan: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reportRepo.CountByStatus: rows: %w", err)
	}

	return counts, nil
}

func (r *ReportRepo) CountByCategory(ctx context.Context) ([]*domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, count(r.id)
		 FROM categories c
		 LEFT JOIN reports r ON r.category_id = c.id
		 GROUP BY c.id, c.name
		 ORDER BY c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.CountByCategory: %w", err)
	}
	defer rows.Close()

	var counts []*domain.CategoryCount
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.ID, &cc.Name, &cc.Count); err != nil {
			return nil, fmt.Errorf("reportRepo.CountByCategory: scan: %w", err)
		}
		counts = append(counts, &cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reportRepo.CountByCategory: rows: %w", err)
	}

	return counts, nil
}

// filterClause builds the WHERE clause for a report filter. Absent filter
// fields match all rows; present ones are ANDed together.
func filterClause(f domain.ReportFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.Status != "" {
		add("r.status = $%d", f.Status)
	}
	if f.LocationID != nil {
		add("r.location_id = $%d", *f.LocationID)
	}
	if f.CategoryID != nil {
		add("r.category_id = $%d", *f.CategoryID)
	}
	if f.AuthorID != nil {
		add("r.author_id = $%d", *f.AuthorID)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "\n\t\t WHERE " + strings.Join(conds, " AND "), args
}

func scanReports(rows pgx.Rows, caller string) ([]*domain.Report, error) {
	var reports []*domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(
			&rep.ID, &rep.Title, &rep.Description, &rep.Status, &rep.ImageURL,
			&rep.AuthorID, &rep.AuthorName, &rep.LocationID, &rep.LocationName,
			&rep.CategoryID, &rep.CategoryName, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", caller, err)
		}
		reports = append(reports, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", caller, err)
	}

	return reports, nil
}
