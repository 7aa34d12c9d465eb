package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Accounts:  append([]string{}, m.Accounts...),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row is locked by another transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %w", errs.ErrAccountLocked, err)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// LockByID loads the user with FOR UPDATE. Creates for the same user serialize on this lock.
func (r *UserRepository) LockByID(ctx context.Context, userID uint64) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, userID)
	}
	return userModelToEntity(&m), nil
}

// updateAccounts writes the accounts column and bumps updated_at
func (r *UserRepository) updateAccounts(ctx context.Context, operation string, userID uint64, value any) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"accounts":   value,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError(operation, result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AppendAccountName appends name to the user's accounts array
func (r *UserRepository) AppendAccountName(ctx context.Context, userID uint64, name string) error {
	return r.updateAccounts(ctx, "appending account name", userID,
		gorm.Expr("array_append(accounts, CAST(? AS text))", name))
}

// ReplaceAccountNames overwrites the user's accounts array
func (r *UserRepository) ReplaceAccountNames(ctx context.Context, userID uint64, names []string) error {
	if names == nil {
		names = []string{}
	}
	return r.updateAccounts(ctx, "replacing account names", userID, pq.StringArray(names))
}

// Create inserts a new user. A zero ID lets the database assign one.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	accounts := user.Accounts
	if accounts == nil {
		accounts = []string{}
	}

	m := model.User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Accounts:  pq.StringArray(accounts),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("User already exists", map[string]any{
				"user_id": user.ID,
				"email":   user.Email,
			})
		}
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	user.ID = m.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id": m.ID,
	})
	return nil
}

// Exists checks if a user exists
func (r *UserRepository) Exists(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking user existence", err, userID)
	}
	return count > 0, nil
}
