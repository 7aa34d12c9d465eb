package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change applied after the tables exist
type step struct {
	version     string
	description string
	run         func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
		steps: []step{
			{version: "1.0.0", description: "Base ledger schema", run: noop},
			{version: "1.1.0", description: "Rebuild tbluser.accounts from tblaccount", run: backfillAccountNames},
		},
	}
}

// MigrateAll creates the tables and applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(ctx); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	for _, s := range m.pending(currentVersion) {
		m.logger.Info("Applying schema step", map[string]any{
			"version":     s.version,
			"description": s.description,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.run(ctx, tx); err != nil {
				return err
			}
			return m.setVersion(ctx, tx, s.version, s.description)
		})
		if err != nil {
			return fmt.Errorf("schema step %s: %w", s.version, err)
		}
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pending returns the steps after currentVersion, in order
func (m *MigrationManager) pending(currentVersion string) []step {
	if currentVersion == "" {
		return m.steps
	}
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:]
		}
	}
	// Unknown version: replay everything; each step is idempotent
	return m.steps
}

// GetCurrentVersion gets the current migration version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.SchemaMigration
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, tx *gorm.DB, version, description string) error {
	appliedAt := time.Now().UTC()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return tx.WithContext(ctx).
		Where(model.SchemaMigration{Version: version}).
		Assign(model.SchemaMigration{Description: description, AppliedAt: appliedAt}).
		FirstOrCreate(&model.SchemaMigration{}).Error
}

// autoMigrateModels creates or alters the ledger tables. Order matters for foreign keys.
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.Transaction{},
	)
}

// SyncUserSequence moves the tbluser id sequence past rows inserted with explicit ids
func (m *MigrationManager) SyncUserSequence(ctx context.Context) error {
	return m.db.WithContext(ctx).Exec(`
		SELECT setval(pg_get_serial_sequence('tbluser', 'id'),
		              GREATEST((SELECT COALESCE(MAX(id), 0) FROM tbluser), 1))
	`).Error
}

func noop(context.Context, *gorm.DB) error { return nil }

// backfillAccountNames rebuilds the denormalized list for every user from
// the accounts they actually own, in account id order
func backfillAccountNames(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`
		UPDATE tbluser u
		SET accounts = COALESCE(
			(SELECT array_agg(a.account_name ORDER BY a.id) FROM tblaccount a WHERE a.user_id = u.id),
			'{}'
		)
	`).Error
}
