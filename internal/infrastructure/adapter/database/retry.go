package database

import (
	"context"
	"errors"
	"math/rand"
	"time"

	domainErr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int // total runs including the first; values below 1 mean one run
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   4,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFromConfig builds the transaction retry policy from database settings
func RetryConfigFromConfig(c *Config) RetryConfig {
	rc := DefaultRetryConfig()
	rc.MaxAttempts = c.RetryAttempts + 1
	if c.RetryDelay > 0 {
		rc.RetryInterval = c.RetryDelay
	}
	return rc
}

// RetryOnTransientError reruns operation while it fails with a lock conflict
// or a transient connection error
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	classifier *repository.ErrorClassifier,
	logger coreport.Logger,
) error {
	attempts := max(config.MaxAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !isTransientError(err, classifier) {
			return err
		}

		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": attempts,
			"error":        err,
			"retry_after":  backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err(),
			})
			return errors.Join(err, ctx.Err())
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err,
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(attempt)
	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}

	return backoff
}

// isTransientError reports whether rerunning the operation may succeed.
// Unique violations and commits with an unknown outcome are never retried.
func isTransientError(err error, classifier *repository.ErrorClassifier) bool {
	if err == nil || errors.Is(err, ErrCommitOutcomeUnknown) || classifier.IsDuplicateKeyError(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, domainErr.ErrAccountLocked) || classifier.IsRetryable(err)
}
