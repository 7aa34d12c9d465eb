package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// balanceMutation applies one balance change through the repository
type balanceMutation func(ctx context.Context, repo persistence.AccountRepository) (*entity.Account, error)

// CreditAccount deposits amount into the user's account and records a Deposit entry
func (u *AccountUseCase) CreditAccount(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error) {
	if err := u.validator.ValidateBalanceChange(userID, accountID, amount); err != nil {
		return nil, err
	}

	return u.changeBalance(ctx, userID, accountID, amount, entity.EntryKindDeposit,
		func(ctx context.Context, repo persistence.AccountRepository) (*entity.Account, error) {
			return repo.Credit(ctx, userID, accountID, amount)
		})
}

// changeBalance runs the mutation and the ledger append in one transaction.
// A mutation that finds no account aborts before any ledger row is written.
func (u *AccountUseCase) changeBalance(
	ctx context.Context,
	userID, accountID uint64,
	amount decimal.Decimal,
	kind entity.EntryKind,
	mutate balanceMutation,
) (*entity.Account, error) {
	var updated *entity.Account
	err := u.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		account, err := mutate(txCtx, u.uow.GetAccountRepository(txCtx))
		if err != nil {
			return err
		}

		entry, err := entity.NewLedgerEntry(userID, account.AccountName, kind, amount, u.timeProvider)
		if err != nil {
			return err
		}
		if err := u.uow.GetLedgerRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		updated = account
		return nil
	})
	if err != nil {
		u.logFailure("Failed to change account balance", err, map[string]any{
			"user_id":    userID,
			"account_id": accountID,
			"amount":     entity.FormatAmount(amount),
			"operation":  string(kind),
		})
		return nil, err
	}

	u.invalidate(ctx, userID)

	u.logger.Info("Account balance changed", map[string]any{
		"user_id":    userID,
		"account_id": accountID,
		"amount":     entity.FormatAmount(amount),
		"operation":  string(kind),
		"balance":    updated.GetBalance(),
	})

	return updated, nil
}
