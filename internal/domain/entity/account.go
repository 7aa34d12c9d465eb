package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

const (
	// MaxAccountNameLength bounds account_name as stored in tblaccount
	MaxAccountNameLength = 50
	// MaxAccountNumberLength bounds account_number as stored in tblaccount
	MaxAccountNumberLength = 50
)

// Account represents a financial account owned by exactly one user
type Account struct {
	ID             uint64          // Unique identifier, assigned by the store
	UserID         uint64          // Owner
	AccountNumber  string          // Free-form account number supplied by the user
	AccountName    string          // Unique per user
	AccountBalance decimal.Decimal // Signed, at most two decimal places
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount validates the input and builds an account that has not been persisted yet
func NewAccount(userID uint64, name, number string, amount decimal.Decimal, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	name, err := NormalizeAccountName(name)
	if err != nil {
		return nil, err
	}

	number = strings.TrimSpace(number)
	if number == "" || utf8.RuneCountInString(number) > MaxAccountNumberLength {
		return nil, errs.ErrInvalidAccountNumber
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		UserID:         userID,
		AccountNumber:  number,
		AccountName:    name,
		AccountBalance: amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// NormalizeAccountName trims the name and enforces its length limits
func NormalizeAccountName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxAccountNameLength {
		return "", errs.ErrInvalidAccountName
	}
	return name, nil
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return FormatAmount(a.AccountBalance)
}

// CanDebit reports whether the balance covers the amount
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.AccountBalance.GreaterThanOrEqual(amount)
}
