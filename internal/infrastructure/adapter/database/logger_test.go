package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "tblaccount"`))
	assert.Equal(t, "UPDATE", extractQueryType(`UPDATE "tblaccount" SET "account_balance"=account_balance + $1`))
	assert.Equal(t, "", extractQueryType("VACUUM"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "tblaccount", extractTableName(`SELECT * FROM "tblaccount" WHERE user_id = 7`))
	assert.Equal(t, "tbltransaction", extractTableName(`INSERT INTO "tbltransaction" ("user_id") VALUES (7)`))
	assert.Equal(t, "tbluser", extractTableName(`UPDATE "tbluser" SET "accounts"=array_append(accounts, 'x')`))
	assert.Equal(t, "", extractTableName("BEGIN"))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	coreLogger := logger.NewFromZap(zap.New(obsCore), core.LogLevelDebug)
	sql := func() (string, int64) { return `SELECT * FROM "tblaccount"`, 1 }

	gormLogger := NewDatabaseLogger(coreLogger, nil, "warn")

	gormLogger.Trace(context.Background(), time.Now(), sql, nil)
	assert.Zero(t, logs.Len(), "fast successful queries are not logged at warn")

	gormLogger.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len(), "record not found is not an error")

	ctx := core.WithRequestID(context.Background(), "req-1")
	gormLogger.Trace(ctx, time.Now(), sql, errors.New("boom"))
	entries := logs.TakeAll()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "SQL Error", entries[0].Message)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "tblaccount", entries[0].ContextMap()["table"])
	}
}
