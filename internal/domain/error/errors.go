package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for structured logs
const (
	// 4xxx - Client errors
	CodeInsufficientBalance  = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidAccountID     = 4004
	CodeInvalidAccountName   = 4005
	CodeInvalidAccountNumber = 4006
	CodeInvalidRequest       = 4007
	CodeAccountNotFound      = 4040
	CodeUserNotFound         = 4041
	CodeAccountExists        = 4090
	CodeAccountLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrAccountExists is returned when the user already owns an account with the same name
	ErrAccountExists = errors.New("account already created")

	// ErrAccountNotFound is returned when no account matches the requested id for the user
	ErrAccountNotFound = errors.New("account not found")

	// ErrUserNotFound is returned when the owning user row does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientBalance is returned when a debit would take the balance below zero
	// and negative balances are disabled
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the amount is malformed or has more than two decimals
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrInvalidAccountName is returned when the account name is empty or too long
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrInvalidAccountNumber is returned when the account number is empty or too long
	ErrInvalidAccountNumber = errors.New("invalid account number")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAccountLocked is returned when a row lock could not be obtained in time
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrDatabaseConnection is returned when the store fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidAccountName):
		return CodeInvalidAccountName
	case errors.Is(err, ErrInvalidAccountNumber):
		return CodeInvalidAccountNumber
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountExists):
		return CodeAccountExists
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the status code returned to API clients
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAccountExists), errors.Is(err, ErrAccountLocked):
		return http.StatusConflict
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsValidationError(err), errors.Is(err, ErrInsufficientBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientBalanceError provides detailed error information for a rejected debit
type InsufficientBalanceError struct {
	AccountID   uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %d: required %s, available %s",
		e.AccountID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		AccountID:   accountID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// DuplicateAccountError reports an account name the user already owns
type DuplicateAccountError struct {
	UserID      uint64
	AccountName string
}

// Error implements the error interface
func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q already created for user %d", e.AccountName, e.UserID)
}

// Is checks if the target error is an ErrAccountExists
func (e *DuplicateAccountError) Is(target error) bool {
	return target == ErrAccountExists
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateAccountError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "duplicate_account",
		"user_id":      e.UserID,
		"account_name": e.AccountName,
		"error_code":   CodeAccountExists,
	}
}

// NewDuplicateAccountError creates a new detailed duplicate account error
func NewDuplicateAccountError(userID uint64, accountName string) error {
	return &DuplicateAccountError{
		UserID:      userID,
		AccountName: accountName,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error was caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidAccountName) ||
		errors.Is(err, ErrInvalidAccountNumber) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsAccountExistsError checks if the error is a duplicate account name conflict
func IsAccountExistsError(err error) bool {
	return errors.Is(err, ErrAccountExists)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}
