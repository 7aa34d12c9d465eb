package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository appends ledger entries to tbltransaction
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entry to a database model
func (r *TransactionRepository) entityToModel(entry *entity.LedgerEntry) model.Transaction {
	return model.Transaction{
		UserID:      entry.UserID,
		Description: entry.Description,
		Type:        string(entry.Type),
		Status:      entry.Status,
		Amount:      entry.Amount,
		Source:      entry.Source,
		CreatedAt:   entry.CreatedAt,
	}
}

// Append inserts the entry and fills its ID
func (r *TransactionRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	m := r.entityToModel(entry)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		fields := map[string]any{
			"user_id":     entry.UserID,
			"description": entry.Description,
			"error":       err.Error(),
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Ledger insert hit a lock conflict", fields)
			return fmt.Errorf("%w: %w", errs.ErrAccountLocked, err)
		}
		r.logger.Error("Failed to append ledger entry", fields)
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	entry.ID = m.ID

	r.logger.Debug("Ledger entry appended", map[string]any{
		"entry_id": m.ID,
		"user_id":  m.UserID,
		"type":     m.Type,
		"amount":   entity.FormatAmount(m.Amount),
	})
	return nil
}
