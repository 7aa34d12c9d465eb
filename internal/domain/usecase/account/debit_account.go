package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// DebitAccount withdraws amount from the user's account and records a Withdrawal entry.
// Whether the balance may go negative is decided by the policy.
func (u *AccountUseCase) DebitAccount(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error) {
	if err := u.validator.ValidateBalanceChange(userID, accountID, amount); err != nil {
		return nil, err
	}

	return u.changeBalance(ctx, userID, accountID, amount, entity.EntryKindWithdrawal,
		func(ctx context.Context, repo persistence.AccountRepository) (*entity.Account, error) {
			return repo.Debit(ctx, userID, accountID, amount, u.policy.AllowNegativeBalance)
		})
}
