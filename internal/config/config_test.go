package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultDebounce, cfg.Debounce.Std())
	assert.Equal(t, 40, cfg.Suggestions.Pool)
	assert.Equal(t, 10, cfg.Suggestions.Limit)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.Endpoint = "http://localhost:9999/get_memes"
	cfg.Debounce = Duration(150 * time.Millisecond)
	cfg.Storage.Backend = BackendSQLite
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "150ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Endpoint, loaded.Endpoint)
	assert.Equal(t, 150*time.Millisecond, loaded.Debounce.Std())
	assert.Equal(t, BackendSQLite, loaded.Storage.Backend)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce = \"1s\"\n\n[suggestions]\nlimit = 5\n"), 0644))

	cfg, err := NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Debounce.Std())
	assert.Equal(t, 5, cfg.Suggestions.Limit)
	assert.Equal(t, 40, cfg.Suggestions.Pool)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce = \"soon\"\n"), 0644))

	_, err := NewConfigServiceAt(path, nil).Load()
	require.Error(t, err)
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigServiceAt("unused", nil).LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "redis"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Endpoint = ""
	require.Error(t, cfg.Validate())
}

func TestStoragePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "favorites.json", filepath.Base(cfg.StoragePath()))

	cfg.Storage.Backend = BackendSQLite
	assert.Equal(t, "favorites.db", filepath.Base(cfg.StoragePath()))

	cfg.Storage.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", cfg.StoragePath())
}
