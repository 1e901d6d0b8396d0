package domain

import "context"

// Store bundles every repository behind one accessor surface.
// *postgres.Store satisfies this interface.
type Store interface {
	Users() UserRepository
	Locations() LocationRepository
	Categories() CategoryRepository
	Reports() ReportRepository
	History() StatusHistoryRepository

	// InTx runs fn against a repository set bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise,
	// at one exit point. Nested calls are not supported.
	InTx(ctx context.Context, fn func(tx Store) error) error
}
