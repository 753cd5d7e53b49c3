package raster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ha1tch/mockboard/internal/board"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	JPEG
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	}
	return "unknown"
}

// FormatFor picks the encoding from the file extension. A path with no
// extension is written as PNG.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", "":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	default:
		return PNG, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
}

// Encode writes the current canvas pixels to w.
func (c *Canvas) Encode(w io.Writer, f Format, quality int) error {
	switch f {
	case PNG:
		return c.dc.EncodePNG(w)
	case JPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		return c.dc.EncodeJPEG(w, quality)
	}
	return fmt.Errorf("%w %d", ErrUnknownFormat, int(f))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Save writes the canvas to path in the format its extension names.
func Save(c *Canvas, path string, quality int) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	cw := &countingWriter{w: file}
	if err := c.Encode(cw, f, quality); err != nil {
		file.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	board.Logger().Info("exported", "path", path, "format", f,
		"size", humanize.Bytes(uint64(cw.n)))
	return nil
}
