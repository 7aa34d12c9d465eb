package account

import (
	"context"
	"slices"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// ReconcileAccountNames rewrites the user's denormalized account list from the accounts table
func (u *AccountUseCase) ReconcileAccountNames(ctx context.Context, userID uint64) ([]string, error) {
	if err := u.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var names []string
	err := u.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)

		user, err := users.LockByID(txCtx, userID)
		if err != nil {
			return err
		}

		actual, err := u.uow.GetAccountRepository(txCtx).ListNamesByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if actual == nil {
			actual = []string{}
		}

		if !slices.Equal(user.Accounts, actual) {
			missing, orphaned := entity.AccountNamesDrift(user.Accounts, actual)
			u.logger.Warn("Account name list drifted from accounts table", map[string]any{
				"user_id":  userID,
				"missing":  missing,
				"orphaned": orphaned,
			})
			if err := users.ReplaceAccountNames(txCtx, userID, actual); err != nil {
				return err
			}
		}

		names = actual
		return nil
	})
	if err != nil {
		u.logFailure("Failed to reconcile account names", err, map[string]any{
			"user_id": userID,
		})
		return nil, err
	}

	return names, nil
}
