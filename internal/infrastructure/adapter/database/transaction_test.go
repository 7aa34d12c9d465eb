package database

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
)

func TestCommitErrorWithUnknownOutcomeRunsOnce(t *testing.T) {
	uow := NewUnitOfWork(nil, logger.NewNopLogger(), nil, "", fastRetry(5), 0)

	calls := 0
	err := RetryOnTransientError(context.Background(), uow.retry, func() error {
		calls++
		return uow.commitError(io.ErrUnexpectedEOF)
	}, uow.classifier, uow.logger)

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, ErrCommitOutcomeUnknown)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Equal(t, http.StatusInternalServerError, errs.HTTPStatus(err))
}

func TestCommitRejectedByServerIsRetried(t *testing.T) {
	uow := NewUnitOfWork(nil, logger.NewNopLogger(), nil, "", fastRetry(3), 0)

	calls := 0
	err := RetryOnTransientError(context.Background(), uow.retry, func() error {
		calls++
		return uow.commitError(&pgconn.PgError{Code: "40001"})
	}, uow.classifier, uow.logger)

	assert.Equal(t, 3, calls)
	assert.NotErrorIs(t, err, ErrCommitOutcomeUnknown)
	assert.ErrorIs(t, err, errs.ErrAccountLocked)
}

func TestBoundContext(t *testing.T) {
	t.Run("Applies the query timeout", func(t *testing.T) {
		uow := NewUnitOfWork(nil, logger.NewNopLogger(), nil, "", fastRetry(1), 2*time.Second)

		ctx, cancel := uow.boundContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, 500*time.Millisecond)
	})

	t.Run("Keeps an earlier deadline", func(t *testing.T) {
		uow := NewUnitOfWork(nil, logger.NewNopLogger(), nil, "", fastRetry(1), time.Hour)
		parent, cancelParent := context.WithTimeout(context.Background(), time.Second)
		defer cancelParent()

		ctx, cancel := uow.boundContext(parent)
		defer cancel()

		want, _ := parent.Deadline()
		got, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("Zero timeout leaves the context alone", func(t *testing.T) {
		uow := NewUnitOfWork(nil, logger.NewNopLogger(), nil, "", fastRetry(1), 0)

		ctx, cancel := uow.boundContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}
