// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"villa-service/internal/adapter/db/postgres"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
// The pool is pinned to one connection because every new connection to
// ":memory:" would see an empty database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, postgres.Migrate(db))
	return db
}

// NewSeededDB is NewDB plus the reference villas and villa numbers.
func NewSeededDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	require.NoError(t, postgres.Seed(context.Background(), db, zaptest.NewLogger(t)))
	return db
}
