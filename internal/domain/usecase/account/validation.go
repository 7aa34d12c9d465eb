package account

import (
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

// AccountValidator provides validation for account operations
type AccountValidator struct{}

// NewAccountValidator creates a new AccountValidator
func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// ValidateUserID checks the caller identity
func (v *AccountValidator) ValidateUserID(userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	return nil
}

// ValidateBalanceChange validates the fields of a deposit or withdrawal
func (v *AccountValidator) ValidateBalanceChange(userID, accountID uint64, amount decimal.Decimal) error {
	if err := v.ValidateUserID(userID); err != nil {
		return err
	}

	if accountID == 0 {
		return errs.ErrInvalidAccountID
	}

	return entity.ValidatePositiveAmount(amount)
}
