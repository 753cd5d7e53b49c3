package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/script"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MOCKBOARD_CONFIG_DIR", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Cleanup(func() { board.SetLogger(nil) })
}

func TestRunWritesImage(t *testing.T) {
	isolateConfig(t)
	out := filepath.Join(t.TempDir(), "concept.png")

	err := run("", out, false, []string{
		"window", "color:#ff0000", "shape", "drag:50,50>150,50",
	})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// Both boxes sit at the origin; the window was appended first so it
	// is the one dragged.
	r, g, b, _ := img.At(250, 250).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b}, "shape stays put")
	r, g, b, _ = img.At(750, 250).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "window moved right")
	_, _, _, a := img.At(150, 250).RGBA()
	assert.Zero(t, a, "old window area is cleared")
}

func TestRunRejectsBadStep(t *testing.T) {
	isolateConfig(t)
	out := filepath.Join(t.TempDir(), "concept.png")

	err := run("", out, false, []string{"window", "toggle:x"})
	assert.ErrorIs(t, err, script.ErrSyntax)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunRejectsBadOutput(t *testing.T) {
	isolateConfig(t)
	err := run("", filepath.Join(t.TempDir(), "concept.gif"), false, nil)
	assert.Error(t, err)
}

func TestRunUsesConfigFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	out := filepath.Join(dir, "small.png")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[canvas]\nwidth = 120\nheight = 80\n"), 0o644))

	require.NoError(t, run(cfgPath, out, true, nil))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}
