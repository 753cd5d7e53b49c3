package config

import (
	"io"
	"log/slog"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/raster"
)

// NewCanvas creates the drawing surface described by the canvas and font
// sections.
func (c *Config) NewCanvas() (*raster.Canvas, error) {
	var opts []raster.Option
	if c.Font.Path != "" {
		opts = append(opts, raster.WithFont(c.Font.Path))
	}
	if c.Canvas.Background != "" {
		bg, err := board.ParseColor(c.Canvas.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, raster.WithBackground(bg))
	}
	return raster.NewCanvas(c.Canvas.Width, c.Canvas.Height, opts...)
}

// StackOptions returns the layer and palette settings as stack options,
// followed by extra.
func (c *Config) StackOptions(extra ...board.StackOption) []board.StackOption {
	initial, err := board.ParseColor(c.Color.Initial)
	if err != nil {
		initial = nil
	}
	opts := []board.StackOption{
		board.WithPalette(board.NewPalette(initial)),
		board.WithLayerSize(c.LayerSize()),
		board.WithFitBounds(c.Layer.FitBounds),
	}
	return append(opts, extra...)
}

// Logger returns a text logger on w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()}))
}
