package model

import (
	"time"
)

// SchemaMigration records one applied schema step
type SchemaMigration struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the schema migration model
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
