package repository

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
)

func TestAccountRepository_HandleDatabaseError(t *testing.T) {
	repo := NewAccountRepository(nil, nil, logger.NewNopLogger())

	tests := []struct {
		name     string
		err      error
		expected error
		status   int
	}{
		{"Missing row", gorm.ErrRecordNotFound, errs.ErrAccountNotFound, http.StatusNotFound},
		{"Row locked", &pgconn.PgError{Code: "55P03"}, errs.ErrAccountLocked, http.StatusConflict},
		{"Balance overflow", &pgconn.PgError{Code: "22003"}, errs.ErrInvalidAmount, http.StatusBadRequest},
		{"Anything else", errors.New("syntax error"), errs.ErrDatabaseConnection, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.handleDatabaseError("updating balance", tt.err, map[string]any{"account_id": 7})
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, tt.status, errs.HTTPStatus(err))
		})
	}
}
