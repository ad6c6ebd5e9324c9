package infrastructure

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"villa-service/internal/adapter/db/postgres"
	"villa-service/internal/config"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			SQLitePath:      filepath.Join(t.TempDir(), "villa.db"),
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 30,
			AutoMigrate:     true,
			Seed:            true,
		},
		Logger: config.LoggerConfig{Level: "silent"},
	}
}

func TestNewDatabase_SQLiteMigratesAndSeeds(t *testing.T) {
	ctx := context.Background()
	log := zaptest.NewLogger(t)
	cfg := sqliteConfig(t)

	db, err := NewDatabase(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	var villas, numbers int64
	require.NoError(t, db.Model(&postgres.VillaSchema{}).Count(&villas).Error)
	require.NoError(t, db.Model(&postgres.VillaNumberSchema{}).Count(&numbers).Error)
	assert.EqualValues(t, len(postgres.SeedVillas()), villas)
	assert.EqualValues(t, len(postgres.SeedVillaNumbers()), numbers)

	assert.NoError(t, PingDatabase(db)(ctx))

	// Seeding again leaves existing rows alone.
	require.NoError(t, Prepare(ctx, db, true, true, log))
	require.NoError(t, db.Model(&postgres.VillaSchema{}).Count(&villas).Error)
	assert.EqualValues(t, len(postgres.SeedVillas()), villas)
}

func TestCloseDatabase(t *testing.T) {
	assert.NoError(t, CloseDatabase(nil))

	db, err := NewDatabase(context.Background(), sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, CloseDatabase(db))
	assert.Error(t, PingDatabase(db)(context.Background()))
}

func TestNewRedisClient(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("disabled yields nil", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), &config.Config{}, log)
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("enabled connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		host, port, err := net.SplitHostPort(mr.Addr())
		require.NoError(t, err)

		cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: host, Port: port}}
		client, err := NewRedisClient(context.Background(), cfg, log)
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NoError(t, client.Close())
	})
}
