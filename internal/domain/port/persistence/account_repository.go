package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// AccountRepository defines data access operations for accounts.
// Credit and Debit lock the row for the rest of the surrounding transaction.
type AccountRepository interface {
	// ListByUserID returns every account owned by the user, ordered by id
	ListByUserID(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// ListNamesByUserID returns account names owned by the user, ordered by id
	ListNamesByUserID(ctx context.Context, userID uint64) ([]string, error)

	// ExistsByName checks whether the user already owns an account with this name
	ExistsByName(ctx context.Context, userID uint64, name string) (bool, error)

	// Create inserts the account and fills its ID and timestamps
	Create(ctx context.Context, account *entity.Account) error

	// Credit adds amount to the balance of the user's account and returns the updated row.
	// Returns errs.ErrAccountNotFound when no account matches.
	Credit(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error)

	// Debit subtracts amount from the balance of the user's account and returns the updated row.
	// When allowNegative is false and the balance does not cover the amount,
	// it returns an error matching errs.ErrInsufficientBalance and changes nothing.
	Debit(ctx context.Context, userID, accountID uint64, amount decimal.Decimal, allowNegative bool) (*entity.Account, error)
}
