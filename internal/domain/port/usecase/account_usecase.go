package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// CreateAccountInput contains data for opening an account
type CreateAccountInput struct {
	Name          string
	AccountNumber string
	Amount        decimal.Decimal
}

// AccountUseCase defines the account operations exposed to transports
type AccountUseCase interface {
	// ListAccounts returns the user's accounts
	ListAccounts(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// CreateAccount opens an account, records it on the user and writes the initial deposit entry
	CreateAccount(ctx context.Context, userID uint64, input CreateAccountInput) (*entity.Account, error)

	// CreditAccount deposits amount into the user's account
	CreditAccount(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error)

	// DebitAccount withdraws amount from the user's account
	DebitAccount(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error)

	// ReconcileAccountNames rebuilds the user's denormalized account-name list from the accounts table
	ReconcileAccountNames(ctx context.Context, userID uint64) ([]string, error)
}
