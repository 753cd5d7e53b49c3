// Package config loads the drawing board settings from TOML.
package config

import (
	"fmt"
	"log/slog"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/raster"
)

type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Layer  LayerConfig  `toml:"layer"`
	Color  ColorConfig  `toml:"color"`
	Export ExportConfig `toml:"export"`
	Font   FontConfig   `toml:"font"`
	Log    LogConfig    `toml:"log"`
}

type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type LayerConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	FitBounds bool    `toml:"fit_bounds"`
}

type ColorConfig struct {
	Initial  string   `toml:"initial"`
	Swatches []string `toml:"swatches"`
}

type ExportConfig struct {
	Path    string `toml:"path"`
	Quality int    `toml:"quality"`
}

type FontConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// LayerSize returns the configured default hit-test box.
func (c *Config) LayerSize() board.Size {
	return board.Size{W: c.Layer.Width, H: c.Layer.Height}
}

// SlogLevel maps the log level name to slog. Unknown names were rejected
// by Validate, so they fall back to warn here.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas: size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Background != "" {
		if _, err := board.ParseColor(c.Canvas.Background); err != nil {
			return fmt.Errorf("canvas.background: %w", err)
		}
	}
	if c.Layer.Width <= 0 || c.Layer.Height <= 0 {
		return fmt.Errorf("layer: size must be positive, got %gx%g", c.Layer.Width, c.Layer.Height)
	}
	if _, err := board.ParseColor(c.Color.Initial); err != nil {
		return fmt.Errorf("color.initial: %w", err)
	}
	for i, s := range c.Color.Swatches {
		if _, err := board.ParseColor(s); err != nil {
			return fmt.Errorf("color.swatches[%d]: %w", i, err)
		}
	}
	if _, err := raster.FormatFor(c.Export.Path); err != nil {
		return fmt.Errorf("export.path: %w", err)
	}
	if c.Export.Quality < 1 || c.Export.Quality > 100 {
		return fmt.Errorf("export.quality: must be 1-100, got %d", c.Export.Quality)
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
