package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func accountModelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountNumber:  m.AccountNumber,
		AccountName:    m.AccountName,
		AccountBalance: m.AccountBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	fields["error"] = err.Error()

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Account row is locked by another transaction", fields)
		return fmt.Errorf("%w: %w", errs.ErrAccountLocked, err)
	}

	if r.errorClassifier.IsOutOfRangeError(err) {
		r.logger.Warn("Balance exceeds the column range", fields)
		return fmt.Errorf("%w: %w", errs.ErrInvalidAmount, err)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// ListByUserID returns the user's accounts ordered by id
func (r *AccountRepository) ListByUserID(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	var models []model.Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing accounts", err, map[string]any{"user_id": userID})
	}

	accounts := make([]*entity.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountModelToEntity(&models[i]))
	}
	return accounts, nil
}

// ListNamesByUserID returns the user's account names ordered by id
func (r *AccountRepository) ListNamesByUserID(ctx context.Context, userID uint64) ([]string, error) {
	names := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("account_name", &names).Error; err != nil {
		return nil, r.handleDatabaseError("listing account names", err, map[string]any{"user_id": userID})
	}
	return names, nil
}

// ExistsByName checks whether the user already owns an account with this name
func (r *AccountRepository) ExistsByName(ctx context.Context, userID uint64, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("user_id = ? AND account_name = ?", userID, name).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking account name", err, map[string]any{
			"user_id":      userID,
			"account_name": name,
		})
	}
	return count > 0, nil
}

// Create inserts the account. The id is always assigned by the database.
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := model.Account{
		UserID:         account.UserID,
		AccountNumber:  account.AccountNumber,
		AccountName:    account.AccountName,
		AccountBalance: account.AccountBalance,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		// The unique index catches a concurrent create that passed ExistsByName
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.NewDuplicateAccountError(account.UserID, account.AccountName)
		}
		return r.handleDatabaseError("creating account", err, map[string]any{
			"user_id":      account.UserID,
			"account_name": account.AccountName,
		})
	}

	account.ID = m.ID
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	r.logger.Debug("Account row inserted", map[string]any{
		"account_id": m.ID,
		"user_id":    m.UserID,
	})
	return nil
}

// lockOwned loads the user's account with FOR UPDATE
func (r *AccountRepository) lockOwned(ctx context.Context, userID, accountID uint64) (*model.Account, error) {
	var m model.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking account", err, map[string]any{
			"user_id":    userID,
			"account_id": accountID,
		})
	}
	return &m, nil
}

// applyDelta runs a single relative UPDATE ... RETURNING on a locked row
func (r *AccountRepository) applyDelta(ctx context.Context, m *model.Account, expr string, amount decimal.Decimal) (*entity.Account, error) {
	result := r.db.WithContext(ctx).
		Model(m).
		Clauses(clause.Returning{}).
		Where("user_id = ?", m.UserID).
		Updates(map[string]any{
			"account_balance": gorm.Expr(expr, amount),
			"updated_at":      r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating balance", result.Error, map[string]any{
			"user_id":    m.UserID,
			"account_id": m.ID,
		})
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrAccountNotFound
	}
	return accountModelToEntity(m), nil
}

// Credit adds amount to the balance
func (r *AccountRepository) Credit(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error) {
	m, err := r.lockOwned(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	account, err := r.applyDelta(ctx, m, "account_balance + ?", amount)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Account credited", map[string]any{
		"account_id":  accountID,
		"amount":      entity.FormatAmount(amount),
		"new_balance": account.GetBalance(),
	})
	return account, nil
}

// Debit subtracts amount from the balance, refusing to go negative unless allowed
func (r *AccountRepository) Debit(ctx context.Context, userID, accountID uint64, amount decimal.Decimal, allowNegative bool) (*entity.Account, error) {
	m, err := r.lockOwned(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if !allowNegative && m.AccountBalance.LessThan(amount) {
		return nil, errs.NewInsufficientBalanceError(accountID, entity.FormatAmount(amount), entity.FormatAmount(m.AccountBalance))
	}

	account, err := r.applyDelta(ctx, m, "account_balance - ?", amount)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Account debited", map[string]any{
		"account_id":  accountID,
		"amount":      entity.FormatAmount(amount),
		"new_balance": account.GetBalance(),
	})
	return account, nil
}
