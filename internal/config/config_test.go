package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "50051", cfg.App.GRPCPort)
	assert.Equal(t, 30, cfg.App.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
	assert.Equal(t, 20, cfg.RateLimit.BurstCapacity)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "villa-service", cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DB_DRIVER=SQLite\nDB_SQLITE_PATH=/tmp/villa.db\nHTTP_PORT=9090\nREDIS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/villa.db", cfg.DB.SQLitePath)
	assert.Equal(t, "9191", cfg.App.HTTPPort, "environment overrides the file")
	assert.True(t, cfg.Redis.Enabled)
	assert.InDelta(t, 2.5, cfg.RateLimit.RequestsPerSecond, 0.0001)
}

func TestLoadConfig_ProductionLoggerDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.DB.Driver = "mysql" }, want: "DB_DRIVER"},
		{name: "sqlite without path", mutate: func(c *Config) { c.DB.Driver = DriverSQLite; c.DB.SQLitePath = "" }, want: "DB_SQLITE_PATH"},
		{name: "bad port", mutate: func(c *Config) { c.App.HTTPPort = "http" }, want: "HTTP_PORT"},
		{name: "same ports", mutate: func(c *Config) { c.App.GRPCPort = c.App.HTTPPort }, want: "must differ"},
		{name: "zero shutdown", mutate: func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }, want: "SHUTDOWN_TIMEOUT_SECONDS"},
		{name: "rate limit without redis", mutate: func(c *Config) { c.RateLimit.Enabled = true }, want: "requires REDIS_ENABLED"},
		{name: "redis ttl", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.CacheTTL = 0 }, want: "REDIS_CACHE_TTL_SECONDS"},
		{name: "log format", mutate: func(c *Config) { c.Logger.Format = "xml" }, want: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "villas", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=villas port=5432 sslmode=disable", db.DSN())
}
