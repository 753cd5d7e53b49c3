package panel

import (
	"image/color"

	"github.com/ha1tch/mockboard/internal/board"
)

type nopSurface struct{}

func (nopSurface) Clear()                 {}
func (nopSurface) Push()                  {}
func (nopSurface) Pop()                   {}
func (nopSurface) Translate(_, _ float64) {}

func (nopSurface) FillRect(board.Rect, color.Color) error { return nil }

func (nopSurface) StrokeRect(board.Rect, color.Color, float64) error { return nil }

func (nopSurface) DrawText(string, board.Point, float64, color.Color) error { return nil }
