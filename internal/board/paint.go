package board

import (
	"image/color"
	"unicode/utf8"
)

// Surface is the drawing target a Stack repaints into. Coordinates passed
// to the primitives are relative to the current translation.
type Surface interface {
	Clear()
	Push()
	Pop()
	Translate(dx, dy float64)
	FillRect(r Rect, c color.Color) error
	StrokeRect(r Rect, c color.Color, width float64) error
	DrawText(s string, at Point, size float64, c color.Color) error
}

// Ink is the colour an op paints with. A current ink is resolved against
// the palette when the op runs, not when the layer was added.
type Ink struct {
	Color   color.Color
	Current bool
}

// CurrentInk paints with the palette colour at paint time.
var CurrentInk = Ink{Current: true}

// Solid returns an ink fixed to c.
func Solid(c color.Color) Ink {
	return Ink{Color: c}
}

// Resolve picks the colour to paint with.
func (k Ink) Resolve(current color.Color) color.Color {
	if k.Current || k.Color == nil {
		return current
	}
	return k.Color
}

// Op is one drawing instruction of a layer. The set of kinds is closed:
// FillRect, StrokeRect and Text.
type Op interface {
	// Apply issues the op against s in layer-local coordinates.
	Apply(s Surface, current color.Color) error
	// Extent is the area the op covers in layer-local coordinates.
	Extent() Rect

	isOp()
}

// FillRect fills Rect with Ink.
type FillRect struct {
	Rect Rect
	Ink  Ink
}

func (o FillRect) Apply(s Surface, current color.Color) error {
	return s.FillRect(o.Rect, o.Ink.Resolve(current))
}

func (o FillRect) Extent() Rect { return o.Rect }

func (FillRect) isOp() {}

// StrokeRect outlines Rect with a line Width pixels wide.
type StrokeRect struct {
	Rect  Rect
	Ink   Ink
	Width float64
}

func (o StrokeRect) Apply(s Surface, current color.Color) error {
	return s.StrokeRect(o.Rect, o.Ink.Resolve(current), o.Width)
}

// Extent includes the half of the line that falls outside Rect.
func (o StrokeRect) Extent() Rect {
	h := o.Width / 2
	return R(o.Rect.Min.X-h, o.Rect.Min.Y-h, o.Rect.W+o.Width, o.Rect.H+o.Width)
}

func (StrokeRect) isOp() {}

// Text draws a single line with its baseline starting at At.
type Text struct {
	At   Point
	Text string
	Size float64
	Ink  Ink
}

func (o Text) Apply(s Surface, current color.Color) error {
	return s.DrawText(o.Text, o.At, o.Size, o.Ink.Resolve(current))
}

// Extent is an estimate: glyph advance is taken as 0.6em and the line
// sits entirely above the baseline.
func (o Text) Extent() Rect {
	w := 0.6 * o.Size * float64(utf8.RuneCountInString(o.Text))
	return R(o.At.X, o.At.Y-o.Size, w, o.Size)
}

func (Text) isOp() {}

// Paint is the drawing program of a layer, run in order.
type Paint []Op

// Bounds returns the union of all op extents.
func (p Paint) Bounds() Rect {
	var r Rect
	for _, op := range p {
		r = r.Union(op.Extent())
	}
	return r
}
