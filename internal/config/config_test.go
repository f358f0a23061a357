package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"userdesk/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "FALLBACK_PATH", "RATE_LIMIT", "CSRF_ENABLED", "SEED_DEMO"} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "userdesk.db", cfg.DBDSN)
	require.Equal(t, "/", cfg.FallbackPath)
	require.Equal(t, 120, cfg.RateLimit)
	require.True(t, cfg.CSRF)
	require.True(t, cfg.SeedDemo)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("LOG_FILE", "")
	t.Setenv("FALLBACK_PATH", config.FallbackNone)
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("CSRF_ENABLED", "false")
	t.Setenv("SEED_DEMO", "0")

	cfg := config.Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, ":memory:", cfg.DBDSN)
	require.Empty(t, cfg.LogFile)
	require.Equal(t, config.FallbackNone, cfg.FallbackPath)
	require.Equal(t, 5, cfg.RateLimit)
	require.False(t, cfg.CSRF)
	require.False(t, cfg.SeedDemo)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("CSRF_ENABLED", "maybe")

	cfg := config.Load()
	require.Equal(t, 120, cfg.RateLimit)
	require.True(t, cfg.CSRF)
}
