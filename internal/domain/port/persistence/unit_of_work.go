package persistence

import (
	"context"
)

// UnitOfWork defines transaction management operations
type UnitOfWork interface {
	// RunInTransaction executes fn inside a transaction.
	// The transaction commits when fn returns nil and rolls back otherwise;
	// transient failures rerun fn from the start.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// GetAccountRepository returns an account repository bound to the
	// transaction carried by ctx, or to the plain connection outside one
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetUserRepository returns a user repository bound like GetAccountRepository
	GetUserRepository(ctx context.Context) UserRepository

	// GetLedgerRepository returns a ledger repository bound like GetAccountRepository
	GetLedgerRepository(ctx context.Context) LedgerRepository
}
