package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps raw database errors that escape the repositories
// (begin, commit, connection setup) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already
// carry a domain error, and context cancellation, pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch m.classifier.Classify(err) {
	case repository.LockError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrAccountLocked, operation, err)
	case repository.OutOfRangeError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrInvalidAmount, operation, err)
	case repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrDatabaseConnection, operation, err)
	}

	return fmt.Errorf("%w: %s: %w", domainErr.ErrInternalServer, operation, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domainErr.ErrAccountExists,
		domainErr.ErrAccountNotFound,
		domainErr.ErrUserNotFound,
		domainErr.ErrInsufficientBalance,
		domainErr.ErrInvalidAmount,
		domainErr.ErrNegativeAmount,
		domainErr.ErrInvalidUserID,
		domainErr.ErrInvalidAccountID,
		domainErr.ErrInvalidAccountName,
		domainErr.ErrInvalidAccountNumber,
		domainErr.ErrInvalidRequest,
		domainErr.ErrAccountLocked,
		domainErr.ErrDatabaseConnection,
		domainErr.ErrInternalServer,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
