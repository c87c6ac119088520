package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiredFields(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/grupa247")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/grupa247")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 30*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 30, cfg.Telegram.PollingTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/grupa247")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("REDIS_ENABLED", "1")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.True(t, cfg.Redis.Enabled)
}
