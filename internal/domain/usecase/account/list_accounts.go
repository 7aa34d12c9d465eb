package account

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// ListAccounts returns all accounts owned by the user, ordered by id
func (u *AccountUseCase) ListAccounts(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	if err := u.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var version int64 = -1
	if u.cache != nil {
		accounts, v, hit := u.cache.Get(ctx, userID)
		if hit {
			u.logger.Debug("Account list served from cache", map[string]any{
				"user_id": userID,
				"count":   len(accounts),
			})
			return accounts, nil
		}
		version = v
	}

	accounts, err := u.uow.GetAccountRepository(ctx).ListByUserID(ctx, userID)
	if err != nil {
		u.logFailure("Failed to list accounts", err, map[string]any{
			"user_id": userID,
		})
		return nil, err
	}

	if accounts == nil {
		accounts = []*entity.Account{}
	}

	if u.cache != nil && version >= 0 {
		u.cache.Set(ctx, userID, version, accounts)
	}

	return accounts, nil
}
