package board

import "image/color"

// Layer is a named, positioned, toggleable drawable.
type Layer struct {
	Name    string
	Paint   Paint
	Pos     Point
	Size    Size
	Visible bool
}

// NewLayer returns a visible layer at the origin with the default box.
func NewLayer(name string, paint Paint) Layer {
	return Layer{
		Name:    name,
		Paint:   paint,
		Size:    DefaultLayerSize,
		Visible: true,
	}
}

// Bounds is the hit-test box. It is independent of what Paint draws.
func (l *Layer) Bounds() Rect {
	return Rect{Min: l.Pos, Size: l.Size}
}

// Draw paints the layer translated to Pos. Hidden layers draw nothing.
// The surface transform is restored even if an op fails; the first
// failing op stops the layer.
func (l *Layer) Draw(s Surface, current color.Color) error {
	if !l.Visible {
		return nil
	}
	s.Push()
	defer s.Pop()
	s.Translate(l.Pos.X, l.Pos.Y)
	for _, op := range l.Paint {
		if err := op.Apply(s, current); err != nil {
			return err
		}
	}
	return nil
}
