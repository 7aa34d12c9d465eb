package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents the database model for accounts.
// The (user_id, account_name) unique index backs the duplicate-name check.
type Account struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	UserID         uint64          `gorm:"not null;uniqueIndex:idx_tblaccount_user_name,priority:1"`
	AccountNumber  string          `gorm:"size:50;not null"`
	AccountName    string          `gorm:"size:50;not null;uniqueIndex:idx_tblaccount_user_name,priority:2"`
	AccountBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "tblaccount"
}
