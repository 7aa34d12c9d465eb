package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// UserRepository defines the operations on the account owner row
type UserRepository interface {
	// LockByID loads the user with a row lock held until the transaction ends.
	// Returns errs.ErrUserNotFound when the user does not exist.
	LockByID(ctx context.Context, userID uint64) (*entity.User, error)

	// AppendAccountName adds name to the end of the user's accounts list and refreshes updated_at
	AppendAccountName(ctx context.Context, userID uint64, name string) error

	// ReplaceAccountNames overwrites the user's accounts list
	ReplaceAccountNames(ctx context.Context, userID uint64, names []string) error

	// Create inserts a new user
	Create(ctx context.Context, user *entity.User) error

	// Exists checks if a user exists
	Exists(ctx context.Context, userID uint64) (bool, error)
}
