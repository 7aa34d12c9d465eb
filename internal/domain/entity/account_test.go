package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount(7, " Savings ", "001", decimal.NewFromInt(100), mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), account.ID)
		assert.Equal(t, uint64(7), account.UserID)
		assert.Equal(t, "Savings", account.AccountName)
		assert.Equal(t, "001", account.AccountNumber)
		assert.Equal(t, "100.00", account.GetBalance())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Zero initial amount", func(t *testing.T) {
		account, err := NewAccount(7, "Wallet", "002", decimal.Zero, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.00", account.GetBalance())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name   string
			userID uint64
			acct   string
			number string
			amount decimal.Decimal
			err    error
		}{
			{"Zero user", 0, "Savings", "001", decimal.NewFromInt(1), errs.ErrInvalidUserID},
			{"Blank name", 7, "   ", "001", decimal.NewFromInt(1), errs.ErrInvalidAccountName},
			{"Long name", 7, strings.Repeat("a", MaxAccountNameLength+1), "001", decimal.NewFromInt(1), errs.ErrInvalidAccountName},
			{"Blank number", 7, "Savings", "", decimal.NewFromInt(1), errs.ErrInvalidAccountNumber},
			{"Negative amount", 7, "Savings", "001", decimal.NewFromInt(-1), errs.ErrNegativeAmount},
			{"Three decimals", 7, "Savings", "001", decimal.RequireFromString("1.234"), errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				account, err := NewAccount(tc.userID, tc.acct, tc.number, tc.amount, mockTime)
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, account)
			})
		}
	})
}

func TestAccountCanDebit(t *testing.T) {
	account := &Account{AccountBalance: decimal.RequireFromString("50.25")}

	assert.True(t, account.CanDebit(decimal.RequireFromString("50.25")))
	assert.True(t, account.CanDebit(decimal.NewFromInt(10)))
	assert.False(t, account.CanDebit(decimal.RequireFromString("50.26")))
}
