package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// ErrCommitOutcomeUnknown marks a COMMIT that failed without a server
// response. The transaction may have been applied, so it is never rerun.
var ErrCommitOutcomeUnknown = errors.New("commit outcome unknown")

// UnitOfWork implements persistence.UnitOfWork on top of GORM transactions
type UnitOfWork struct {
	db             *gorm.DB
	logger         coreport.Logger
	timeProvider   coreport.TimeProvider
	isolationLevel string
	retry          RetryConfig
	queryTimeout   time.Duration
	errorMapper    *ErrorMapper
	classifier     *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance. A positive queryTimeout
// bounds each top-level transaction, retries included.
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	isolationLevel string,
	retry RetryConfig,
	queryTimeout time.Duration,
) *UnitOfWork {
	if isolationLevel == "" {
		isolationLevel = "READ COMMITTED"
	}
	return &UnitOfWork{
		db:             db,
		logger:         logger,
		timeProvider:   timeProvider,
		isolationLevel: isolationLevel,
		retry:          retry,
		queryTimeout:   queryTimeout,
		errorMapper:    NewErrorMapper(),
		classifier:     repository.NewErrorClassifier(),
	}
}

// RunInTransaction runs fn in a transaction, rerunning it from the start
// when it fails on a lock conflict or transient connection error.
// A call nested inside another transaction joins the outer one.
func (u *UnitOfWork) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	ctx, cancel := u.boundContext(ctx)
	defer cancel()

	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.runOnce(ctx, fn)
	}, u.classifier, u.logger)
}

// boundContext applies the query timeout. An earlier deadline on ctx still wins.
func (u *UnitOfWork) boundContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.queryTimeout)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, tx, err := u.begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			u.rollback(tx)
			panic(r)
		}
		u.rollback(tx)
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err})
		return u.commitError(err)
	}
	committed = true
	return nil
}

// commitError maps a failed COMMIT. A server error means the transaction
// was rolled back and may be rerun; any other failure leaves the outcome unknown.
func (u *UnitOfWork) commitError(err error) error {
	mapped := u.errorMapper.MapError(err, "commit")

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapped
	}
	return fmt.Errorf("%w: %w", ErrCommitOutcomeUnknown, mapped)
}

// begin starts a transaction at the configured isolation level
func (u *UnitOfWork) begin(ctx context.Context) (context.Context, *gorm.DB, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error})
		return ctx, nil, u.errorMapper.MapError(tx.Error, "begin")
	}

	if err := tx.Exec(fmt.Sprintf("SET TRANSACTION ISOLATION LEVEL %s", u.isolationLevel)).Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{
			"isolation_level": u.isolationLevel,
			"error":           err,
		})
		return ctx, nil, u.errorMapper.MapError(err, "set isolation level")
	}

	return context.WithValue(ctx, txKey, tx), tx, nil
}

func (u *UnitOfWork) rollback(tx *gorm.DB) {
	err := tx.Rollback().Error
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Warn("Failed to rollback transaction", map[string]any{"error": err})
	}
}

// GetAccountRepository returns an account repository bound to the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetUserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetLedgerRepository returns a ledger repository bound to the current transaction
func (u *UnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
