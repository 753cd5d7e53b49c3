package board

import (
	"errors"
	"fmt"
	"image/color"
)

var errPaint = errors.New("paint failed")

// painted is one primitive as it landed on the surface, in surface
// coordinates.
type painted struct {
	kind string
	rect Rect
	text string
	col  color.Color
}

// recSurface records primitives and tracks the translation stack.
type recSurface struct {
	calls  []string
	frame  []painted
	clears int
	offset Point
	saved  []Point
	failOn string
}

func (s *recSurface) Clear() {
	s.calls = append(s.calls, "clear")
	s.frame = nil
	s.clears++
}

func (s *recSurface) Push() {
	s.calls = append(s.calls, "push")
	s.saved = append(s.saved, s.offset)
}

func (s *recSurface) Pop() {
	s.calls = append(s.calls, "pop")
	s.offset = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *recSurface) Translate(dx, dy float64) {
	s.calls = append(s.calls, fmt.Sprintf("translate %g,%g", dx, dy))
	s.offset = s.offset.Add(Pt(dx, dy))
}

func (s *recSurface) FillRect(r Rect, c color.Color) error {
	return s.paint("fill", r, "", c)
}

func (s *recSurface) StrokeRect(r Rect, c color.Color, width float64) error {
	return s.paint("stroke", r, "", c)
}

func (s *recSurface) DrawText(text string, at Point, size float64, c color.Color) error {
	return s.paint("text", R(at.X, at.Y, 0, 0), text, c)
}

func (s *recSurface) paint(kind string, r Rect, text string, c color.Color) error {
	s.calls = append(s.calls, kind)
	if s.failOn != "" && s.failOn == text {
		return errPaint
	}
	r.Min = r.Min.Add(s.offset)
	s.frame = append(s.frame, painted{kind: kind, rect: r, text: text, col: c})
	return nil
}

// recList records list view refreshes.
type recList struct {
	refreshes [][]string
}

func (l *recList) Refresh(names []string) {
	l.refreshes = append(l.refreshes, names)
}

func square(c color.Color) Paint {
	return Paint{FillRect{Rect: R(0, 0, 100, 100), Ink: Solid(c)}}
}
