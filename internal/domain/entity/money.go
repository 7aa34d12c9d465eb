package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest value a numeric(14,2) column holds
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ParseAmount validates a string amount and converts it to a decimal.
// Accepts "10", "10.", "10.5" and "10.50"; rejects signs other than a leading
// minus (reported as negative), exponents and more than two decimals.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	if strings.ContainsAny(amount, "eE+") {
		return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if err := ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// ValidateAmount checks that an amount is non-negative, at most MaxAmount
// and carries at most two decimals
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.ErrNegativeAmount
	}

	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: maximum is %s", errs.ErrInvalidAmount, FormatAmount(MaxAmount))
	}

	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return nil
}

// ValidatePositiveAmount is ValidateAmount plus a strictly-greater-than-zero check.
// Used for deposits and withdrawals.
func ValidatePositiveAmount(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if amount.IsZero() {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	return nil
}

// FormatAmount renders an amount with exactly two decimal places, e.g. 10.1 -> "10.10"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
