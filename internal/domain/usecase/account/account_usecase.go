package account

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// Policy holds the business rules that vary per deployment
type Policy struct {
	// AllowNegativeBalance lets a withdrawal take the balance below zero
	AllowNegativeBalance bool
}

// DefaultPolicy keeps withdrawals unbounded
func DefaultPolicy() Policy {
	return Policy{AllowNegativeBalance: true}
}

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	cache        cache.AccountListCache
	validator    *AccountValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *AccountUseCase {
	return &AccountUseCase{
		uow:          uow,
		validator:    NewAccountValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy,
	}
}

// WithCache sets the account list cache. Reads go to the store when no cache is set.
func (u *AccountUseCase) WithCache(c cache.AccountListCache) *AccountUseCase {
	u.cache = c
	return u
}

// invalidate drops the cached list after a committed write. It runs even
// when the caller has gone away, since the write it follows is durable.
func (u *AccountUseCase) invalidate(ctx context.Context, userID uint64) {
	if u.cache != nil {
		u.cache.Invalidate(context.WithoutCancel(ctx), userID)
	}
}

// logFailure logs an operation error at a level matching its cause
func (u *AccountUseCase) logFailure(message string, err error, fields map[string]any) {
	fields["error"] = err.Error()
	fields["error_code"] = errs.ErrorCode(err)

	var balanceErr *errs.InsufficientBalanceError
	var duplicateErr *errs.DuplicateAccountError
	switch {
	case errors.As(err, &balanceErr):
		for k, v := range balanceErr.LogFields() {
			fields[k] = v
		}
		u.logger.Warn(message, fields)
	case errors.As(err, &duplicateErr):
		for k, v := range duplicateErr.LogFields() {
			fields[k] = v
		}
		u.logger.Warn(message, fields)
	case errs.IsNotFoundError(err), errs.IsValidationError(err):
		u.logger.Warn(message, fields)
	default:
		u.logger.Error(message, fields)
	}
}
