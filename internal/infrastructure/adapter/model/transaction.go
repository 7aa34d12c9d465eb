package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one ledger row. Rows are inserted and never updated.
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;index:idx_tbltransaction_user_created,priority:1"`
	Description string          `gorm:"type:text;not null"`
	Type        string          `gorm:"size:10;not null;check:chk_tbltransaction_type,type IN ('income','expense')"`
	Status      string          `gorm:"size:20;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Source      string          `gorm:"size:100;not null"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_tbltransaction_user_created,priority:2"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "tbltransaction"
}
