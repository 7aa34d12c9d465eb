package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// EntryType is the direction of money movement recorded by a ledger entry
type EntryType string

const (
	// EntryTypeIncome is money added to an account
	EntryTypeIncome EntryType = "income"
	// EntryTypeExpense is money taken from an account
	EntryTypeExpense EntryType = "expense"
)

// EntryStatusCompleted is the only status the service writes
const EntryStatusCompleted = "Completed"

// EntryKind identifies which operation produced an entry. It becomes the
// parenthesised suffix of the description.
type EntryKind string

const (
	EntryKindInitialDeposit EntryKind = "Initial Deposit"
	EntryKindDeposit        EntryKind = "Deposit"
	EntryKindWithdrawal     EntryKind = "Withdrawal"
)

// Type returns the entry type each kind records
func (k EntryKind) Type() EntryType {
	if k == EntryKindWithdrawal {
		return EntryTypeExpense
	}
	return EntryTypeIncome
}

// LedgerEntry is one immutable row of the transaction history
type LedgerEntry struct {
	ID          uint64
	UserID      uint64
	Description string
	Type        EntryType
	Status      string
	Amount      decimal.Decimal
	Source      string
	CreatedAt   time.Time
}

// NewLedgerEntry builds the entry recorded for an operation on the named account
func NewLedgerEntry(userID uint64, accountName string, kind EntryKind, amount decimal.Decimal, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if accountName == "" {
		return nil, errs.ErrInvalidAccountName
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &LedgerEntry{
		UserID:      userID,
		Description: fmt.Sprintf("%s (%s)", accountName, kind),
		Type:        kind.Type(),
		Status:      EntryStatusCompleted,
		Amount:      amount,
		Source:      accountName,
		CreatedAt:   timeProvider.Now(),
	}, nil
}
