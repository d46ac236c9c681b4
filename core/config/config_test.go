package config

import (
	"os"
	"path/filepath"
	"testing"

	"catalog-reconciler/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, match.DefaultThreshold, cfg.Match.Threshold)
	assert.Equal(t, match.DefaultCacheSize, cfg.Match.CacheSize)
	assert.Equal(t, "merged.xlsx", cfg.Match.Output)
	assert.False(t, cfg.Match.Header)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "85")
	t.Setenv("MATCH_HEADER", "true")
	t.Setenv("STORAGE_BUCKET", "catalogs")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 85, cfg.Match.Threshold)
	assert.True(t, cfg.Match.Header)
	assert.Equal(t, "catalogs", cfg.Storage.Bucket)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MATCH_CACHE_SIZE=10\nLOG_FORMAT=console\n"), 0644)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("MATCH_CACHE_SIZE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Match.CacheSize)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_InvalidThreshold(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "150")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, match.ErrInvalidConfig)
}
