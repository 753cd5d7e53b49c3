package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/mockboard/internal/board"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 800, c.Canvas.Width)
	assert.Equal(t, 600, c.Canvas.Height)
	assert.Equal(t, board.DefaultLayerSize, c.LayerSize())
	assert.False(t, c.Layer.FitBounds)
	assert.Equal(t, "#000000", c.Color.Initial)
	assert.NotEmpty(t, c.Color.Swatches)
	assert.Equal(t, "concept.png", c.Export.Path)
	assert.Equal(t, slog.LevelWarn, c.SlogLevel())
}

func TestLoadFromPathOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[canvas]
width = 1024

[layer]
fit_bounds = true

[color]
swatches = ["#123456"]

[log]
level = "debug"
`)
	c, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, c.Canvas.Width)
	assert.Equal(t, 600, c.Canvas.Height, "untouched keys keep defaults")
	assert.True(t, c.Layer.FitBounds)
	assert.Equal(t, []string{"#123456"}, c.Color.Swatches)
	assert.Equal(t, slog.LevelDebug, c.SlogLevel())
}

func TestLoadFromPathEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "# nothing\n")
	c, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFromPathRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[canvas]\ndepth = 3\n", "unknown keys: canvas.depth"},
		{"syntax", "[canvas\n", ""},
		{"zero canvas", "[canvas]\nwidth = 0\n", "canvas"},
		{"negative layer", "[layer]\nheight = -1\n", "layer"},
		{"bad initial colour", "[color]\ninitial = \"black\"\n", "color.initial"},
		{"bad swatch", "[color]\nswatches = [\"#fff\", \"#zzz\"]\n", "color.swatches[1]"},
		{"bad background", "[canvas]\nbackground = \"#12\"\n", "canvas.background"},
		{"bad export format", "[export]\npath = \"out.tiff\"\n", "export.path"},
		{"bad quality", "[export]\nquality = 0\n", "export.quality"},
		{"bad log level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := LoadFromPath(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveExplicitMustExist(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveFromEnvDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[export]\npath = \"mock.jpg\"\n")
	t.Setenv(EnvConfigDir, dir)

	c, used, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "mock.jpg", c.Export.Path)
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	c, used, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), c)
}
