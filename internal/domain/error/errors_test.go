package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrAccountExists.Error() != "account already created" {
		t.Errorf("ErrAccountExists has unexpected message: %s", ErrAccountExists.Error())
	}
	if ErrAccountNotFound.Error() != "account not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidAccountID", ErrInvalidAccountID, 4004},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"AccountExists", ErrAccountExists, 4090},
		{"AccountLocked", ErrAccountLocked, 4230},
		{"DatabaseConnection", ErrDatabaseConnection, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Conflict", ErrAccountExists, http.StatusConflict},
		{"DetailedConflict", NewDuplicateAccountError(7, "Savings"), http.StatusConflict},
		{"AccountNotFound", ErrAccountNotFound, http.StatusNotFound},
		{"UserNotFound", ErrUserNotFound, http.StatusNotFound},
		{"Validation", fmt.Errorf("%w: empty value", ErrInvalidAmount), http.StatusBadRequest},
		{"InsufficientBalance", NewInsufficientBalanceError(1, "30.00", "10.00"), http.StatusBadRequest},
		{"Locked", ErrAccountLocked, http.StatusConflict},
		{"StoreFailure", fmt.Errorf("%w: connection refused", ErrDatabaseConnection), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, "100.50", "50.25")

	expectedMsg := "insufficient balance for account 42: required 100.50, available 50.25"
	if err.Error() != expectedMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}

	var detailed *InsufficientBalanceError
	if !errors.As(err, &detailed) {
		t.Fatalf("errors.As failed to extract InsufficientBalanceError")
	}
	fields := detailed.LogFields()
	if fields["account_id"] != uint64(42) || fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestDuplicateAccountError(t *testing.T) {
	err := NewDuplicateAccountError(7, "Savings")

	if err.Error() != `account "Savings" already created for user 7` {
		t.Errorf("DuplicateAccountError.Error() = %s", err.Error())
	}
	if !IsAccountExistsError(err) {
		t.Errorf("IsAccountExistsError(err) = false, want true")
	}
	if IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(err) = true, want false")
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(fmt.Errorf("bad: %w", ErrInvalidAccountName)) {
		t.Errorf("wrapped ErrInvalidAccountName should be a validation error")
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Errorf("ErrDatabaseConnection should not be a validation error")
	}
}
