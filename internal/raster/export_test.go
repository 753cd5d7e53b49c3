package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/mockboard/internal/board"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"concept.png", PNG, false},
		{"CONCEPT.PNG", PNG, false},
		{"out", PNG, false},
		{"shot.jpg", JPEG, false},
		{"shot.jpeg", JPEG, false},
		{"shot.gif", PNG, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodePNGRoundTripsPixels(t *testing.T) {
	c := newCanvas(t)
	require.NoError(t, c.FillRect(board.R(10, 10, 50, 50), color.Black))

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, PNG, 0))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())

	_, _, _, a := img.At(30, 30).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(300, 300).RGBA()
	assert.Zero(t, a)
}

func TestEncodeJPEG(t *testing.T) {
	c := newCanvas(t, WithBackground(color.White))
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, JPEG, 500))
	cfg, err := jpeg.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
}

func TestSaveWritesFile(t *testing.T) {
	c := newCanvas(t)
	s := board.NewSession(c)
	_, err := s.Add(board.ActionWindow)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "concept.png")
	require.NoError(t, Save(c, path, 0))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(400, 300).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	c := newCanvas(t)
	path := filepath.Join(t.TempDir(), "concept.bmp")
	assert.ErrorIs(t, Save(c, path, 0), ErrUnknownFormat)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveBadDirectory(t *testing.T) {
	c := newCanvas(t)
	err := Save(c, filepath.Join(t.TempDir(), "missing", "out.png"), 0)
	assert.Error(t, err)
}
