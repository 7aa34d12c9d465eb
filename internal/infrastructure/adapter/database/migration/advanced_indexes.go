package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Account list reads filter by owner and sort by id
		name: "idx_tblaccount_user_id_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_tblaccount_user_id_id ON tblaccount (user_id, id)`,
	},
	{
		name: "idx_tbltransaction_user_type",
		sql:  `CREATE INDEX IF NOT EXISTS idx_tbltransaction_user_type ON tbltransaction (user_id, type)`,
	},
	{
		// Ledger rows are append-only, so created_at correlates with physical order
		name: "idx_tbltransaction_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_tbltransaction_created_at_brin
			ON tbltransaction USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_tbluser_accounts_gin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_tbluser_accounts_gin ON tbluser USING GIN (accounts)`,
	},
}

// CreateAdvancedIndexes creates the indexes above. Each statement is idempotent.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err,
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	tweaks := map[string]string{
		// Balance updates rewrite rows in place; leave room for HOT updates
		"tblaccount fillfactor":        `ALTER TABLE tblaccount SET (fillfactor = 80)`,
		"tbltransaction user_id stats": `ALTER TABLE tbltransaction ALTER COLUMN user_id SET STATISTICS 1000`,
	}

	for name, sql := range tweaks {
		if err := m.db.WithContext(ctx).Exec(sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": name,
				"error": err,
			})
		}
	}
}
