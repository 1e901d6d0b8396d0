package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// querier is the subset of pgx operations shared by *pgxpool.Pool and
// pgx.Tx. Every repository runs against it, so the same repository code
// serves both pooled and transactional execution.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool       *pgxpool.Pool // nil for transaction-bound stores
	users      *UserRepo
	locations  *LocationRepo
	categories *CategoryRepo
	reports    *ReportRepo
	history    *StatusHistoryRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	s := newStore(pool)
	s.pool = pool
	return s, nil
}

func newStore(db querier) *Store {
	return &Store{
		users:      NewUserRepo(db),
		locations:  NewLocationRepo(db),
		categories: NewCategoryRepo(db),
		reports:    NewReportRepo(db),
		history:    NewStatusHistoryRepo(db),
	}
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Users() domain.UserRepository            { return s.users }
func (s *Store) Locations() domain.LocationRepository    { return s.locations }
func (s *Store) Categories() domain.CategoryRepository   { return s.categories }
func (s *Store) Reports() domain.ReportRepository        { return s.reports }
func (s *Store) History() domain.StatusHistoryRepository { return s.history }

// InTx runs fn against a repository set bound to one transaction, committed
// when fn returns nil and rolled back otherwise. A store that is already
// transaction-bound runs fn directly on itself.
func (s *Store) InTx(ctx context.Context, fn func(tx domain.Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.InTx: begin: %w", err)
	}

	if err := fn(newStore(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("postgres.InTx: rollback: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.InTx: commit: %w", err)
	}

	return nil
}

// Postgres error codes mapped to domain sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
