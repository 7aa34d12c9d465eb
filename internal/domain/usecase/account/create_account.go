package account

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// CreateAccount opens an account for the user. The account row, the name
// appended to the user's list and the initial deposit entry commit together.
func (u *AccountUseCase) CreateAccount(ctx context.Context, userID uint64, input usecase.CreateAccountInput) (*entity.Account, error) {
	draft, err := entity.NewAccount(userID, input.Name, input.AccountNumber, input.Amount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	var created *entity.Account
	err = u.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)
		accounts := u.uow.GetAccountRepository(txCtx)

		// Serializes concurrent creates for the same user
		user, err := users.LockByID(txCtx, userID)
		if err != nil {
			return err
		}

		exists, err := accounts.ExistsByName(txCtx, userID, draft.AccountName)
		if err != nil {
			return err
		}
		if exists {
			return errs.NewDuplicateAccountError(userID, draft.AccountName)
		}

		// Fresh copy per attempt so a retried transaction never carries a stale ID
		account := *draft
		if err := accounts.Create(txCtx, &account); err != nil {
			return err
		}

		// A name listed without a backing account is drift; reuse it
		if user.HasAccountName(account.AccountName) {
			u.logger.Warn("Account name already listed for user", map[string]any{
				"user_id":      userID,
				"account_name": account.AccountName,
			})
		} else if err := users.AppendAccountName(txCtx, userID, account.AccountName); err != nil {
			return err
		}

		entry, err := entity.NewLedgerEntry(userID, account.AccountName, entity.EntryKindInitialDeposit, account.AccountBalance, u.timeProvider)
		if err != nil {
			return err
		}
		if err := u.uow.GetLedgerRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		created = &account
		return nil
	})
	if err != nil {
		u.logFailure("Failed to create account", err, map[string]any{
			"user_id":      userID,
			"account_name": draft.AccountName,
		})
		return nil, err
	}

	u.invalidate(ctx, userID)

	u.logger.Info("Account created", map[string]any{
		"user_id":         userID,
		"account_id":      created.ID,
		"account_name":    created.AccountName,
		"initial_balance": created.GetBalance(),
	})

	return created, nil
}
