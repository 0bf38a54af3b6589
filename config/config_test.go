package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()

	assert.Equal(t, "5000", cfg.API.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.API.AllowedOrigins)
	assert.Equal(t, 60, cfg.Github.RequestsPerHour)
	assert.Equal(t, "cookie", cfg.Session.Backend)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Logs.OutputLogsAsJSON)
}

func TestResolveConfigFile(t *testing.T) {
	t.Run("file next to binary", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(""), 0o644))

		path, err := resolveConfigFile(dir)

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config", "config.toml"), path)
	})

	t.Run("no file anywhere", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		empty := t.TempDir()
		require.NoError(t, os.Chdir(empty))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		_, err = resolveConfigFile(t.TempDir())

		assert.Error(t, err)
		assert.True(t, IsMissingFile(err))
	})
}
