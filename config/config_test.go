package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/topdown/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, "assets/types", cfg.Assets.Types)
	assert.Equal(t, "assets/mask.png", cfg.Assets.Mask)
	assert.Equal(t, "player", cfg.Player.Type)
	assert.Equal(t, 600.0, cfg.Player.Speed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Tick.Rate)
	assert.Equal(t, time.Second/60, cfg.Tick.Interval())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
assets:
  types: types
  mask: /abs/mask.png
player:
  speed: 300
  x: 12
log:
  level: debug
  file: topdown.log
window:
  width: 640
  height: 480
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, filepath.Join(dir, "types"), cfg.Assets.Types)
	assert.Equal(t, filepath.Join(dir, "assets/map.yaml"), cfg.Assets.Map)
	assert.Equal(t, "/abs/mask.png", cfg.Assets.Mask)
	assert.Equal(t, 300.0, cfg.Player.Speed)
	assert.Equal(t, 12.0, cfg.Player.X)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestLoadEmptyAssetPathsOptOut(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "assets:\n  map: \"\"\n  mask: \"\"\n"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Assets.Map)
	assert.Empty(t, cfg.Assets.Mask)
	assert.NotEmpty(t, cfg.Assets.Types)
}

func TestLoadFindsFileInWorkingDirectory(t *testing.T) {
	path := writeConfig(t, "player:\n  type: hero\n")
	t.Chdir(filepath.Dir(path))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "hero", cfg.Player.Type)
	assert.NotEmpty(t, cfg.File)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "player:\n  speed: 300\n")
	t.Setenv("TOPDOWN_PLAYER_SPEED", "150")
	t.Setenv("TOPDOWN_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cfg.Player.Speed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative speed", "player:\n  speed: -1\n"},
		{"zero tick rate", "tick:\n  rate: 0\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"empty window", "window:\n  width: 0\n"},
		{"no player type", "player:\n  type: \"\"\n"},
		{"malformed", "player: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
