package board

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for colour strings that are not #rgb or #rrggbb.
var ErrBadColor = errors.New("bad colour")

// ParseColor parses a #rgb or #rrggbb hex string.
func ParseColor(s string) (color.Color, error) {
	// colorful.Hex tolerates short or trailing digits; only accept the
	// two exact forms.
	if len(s) != 4 && len(s) != 7 {
		return nil, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	return c, nil
}

// Palette is the colour selector. Layers painted with CurrentInk read it
// at paint time, so a change only shows after the next redraw.
type Palette struct {
	current color.Color
}

// NewPalette returns a palette set to initial (black if nil).
func NewPalette(initial color.Color) *Palette {
	if initial == nil {
		initial = color.Black
	}
	return &Palette{current: initial}
}

// Current returns the selected colour.
func (p *Palette) Current() color.Color {
	return p.current
}

// Set selects c. nil is ignored.
func (p *Palette) Set(c color.Color) {
	if c != nil {
		p.current = c
	}
}

// SetHex selects the colour written as hex. The selection is unchanged
// on error.
func (p *Palette) SetHex(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	p.current = c
	return nil
}

// Hex returns the selected colour as #rrggbb.
func (p *Palette) Hex() string {
	return Hex(p.current)
}

// Hex formats c as #rrggbb. Fully transparent colours have no hex form
// and come back as black.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
