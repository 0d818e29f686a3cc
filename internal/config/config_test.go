package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(FileEnv, "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, ":8000", cfg.Addr())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setgame.toml")
		err := os.WriteFile(path, []byte("port = 9000\nseed = 42\nallowed_origins = [\"http://localhost:3000\"]\n"), 0644)
		require.NoError(t, err)
		t.Setenv(FileEnv, path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
		assert.Equal(t, "./build", cfg.StaticDir)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setgame.toml")
		require.NoError(t, os.WriteFile(path, []byte("port = 9000\n"), 0644))
		t.Setenv(FileEnv, path)
		t.Setenv("SETGAME_PORT", "9100")
		t.Setenv("SETGAME_STATIC_DIR", "/srv/set")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.Port)
		assert.Equal(t, "/srv/set", cfg.StaticDir)
	})

	t.Run("bad file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setgame.toml")
		require.NoError(t, os.WriteFile(path, []byte("port = \"nine\"\n"), 0644))
		t.Setenv(FileEnv, path)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv(FileEnv, filepath.Join(t.TempDir(), "nope.toml"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv(FileEnv, "")
		t.Setenv("SETGAME_PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})
}
