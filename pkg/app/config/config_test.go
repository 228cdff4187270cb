package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.Redis.URL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INVENTORY_HOST", "127.0.0.1")
	t.Setenv("INVENTORY_PORT", "8081")
	t.Setenv("INVENTORY_SESSION_SECRET", "s3cret")
	t.Setenv("INVENTORY_SESSION_TTL", "1h")
	t.Setenv("INVENTORY_REDIS_URL", "redis://cache:6379/1")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.ListenAddr())
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
}

func TestBarePortOverride(t *testing.T) {
	t.Setenv("INVENTORY_PORT", "8081")
	t.Setenv("PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr())
}
