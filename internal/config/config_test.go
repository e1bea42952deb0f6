package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("AMADEUS_CLIENT_ID", "client-id")
	t.Setenv("SKYSCANNER_API_KEY", "rapid-key")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "cache.internal", cfg.Cache.Host)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "client-id", cfg.Amadeus.ClientID)
	assert.Equal(t, "rapid-key", cfg.Skyscanner.APIKey)
}

func TestLoad_YAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"7000\"\nexchange_rate: 1650\ncache:\n  host: from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("TRIPSEARCH_CONFIG", path)
	t.Setenv("REDIS_HOST", "from-env")

	cfg := Load()
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, float64(1650), cfg.ExchangeRate)
	assert.Equal(t, "from-env", cfg.Cache.Host)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("REDIS_TTL", "not-a-duration")
	cfg := Load()
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}
