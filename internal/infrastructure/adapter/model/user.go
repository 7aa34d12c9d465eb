package model

import (
	"time"

	"github.com/lib/pq"
)

// User represents the database model for account owners
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"size:120;not null;uniqueIndex:idx_tbluser_email"`
	FirstName string `gorm:"column:firstname;size:50"`
	LastName  string `gorm:"column:lastname;size:50"`
	// Accounts holds account names in creation order
	Accounts  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "tbluser"
}
