package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"Unique violation code", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"Translated unique violation", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"Wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"Serialization failure", &pgconn.PgError{Code: "40001"}, LockError},
		{"Deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"Lock not available", &pgconn.PgError{Code: "55P03"}, LockError},
		{"Admin shutdown", &pgconn.PgError{Code: "57P01"}, TransientError},
		{"Connection reset", errors.New("read: connection reset by peer"), TransientError},
		{"Dial failure", errors.New("dial tcp: lookup db: no such host"), ConnectionError},
		{"Numeric overflow", &pgconn.PgError{Code: "22003"}, OutOfRangeError},
		{"Foreign key", &pgconn.PgError{Code: "23503"}, ConstraintError},
		{"Check constraint", gorm.ErrCheckConstraintViolated, ConstraintError},
		{"Unrelated", errors.New("syntax error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_IsRetryable(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, c.IsRetryable(errors.New("write: broken pipe")))
	assert.False(t, c.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, c.IsRetryable(gorm.ErrRecordNotFound))
	assert.False(t, c.IsRetryable(nil))
}

func TestErrorClassifier_IsOutOfRangeError(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsOutOfRangeError(fmt.Errorf("update: %w", &pgconn.PgError{Code: "22003"})))
	assert.False(t, c.IsRetryable(&pgconn.PgError{Code: "22003"}))
	assert.False(t, c.IsOutOfRangeError(&pgconn.PgError{Code: "23514"}))
	assert.False(t, c.IsOutOfRangeError(nil))
}
