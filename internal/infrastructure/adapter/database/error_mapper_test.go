package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	domainErr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"Deadlock", &pgconn.PgError{Code: "40P01"}, domainErr.ErrAccountLocked},
		{"Lock timeout", &pgconn.PgError{Code: "55P03"}, domainErr.ErrAccountLocked},
		{"Connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), domainErr.ErrDatabaseConnection},
		{"Numeric overflow", &pgconn.PgError{Code: "22003"}, domainErr.ErrInvalidAmount},
		{"Unknown", errors.New("syntax error at or near"), domainErr.ErrInternalServer},
		{"Domain error passes through", domainErr.ErrAccountNotFound, domainErr.ErrAccountNotFound},
		{"Context cancellation passes through", context.Canceled, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "commit"), tt.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "commit"))
}
