package board

import (
	"fmt"
	"slices"
)

// ListView shows the layer names. It is refreshed with the full, ordered
// list whenever a layer is added; row i toggles layer i.
type ListView interface {
	Refresh(names []string)
}

// Stack is the ordered set of layers on one surface. Index order is paint
// order (back to front) and list order. Layers are never removed, so an
// index stays valid for the life of the stack.
type Stack struct {
	layers  []Layer
	surface Surface
	list    ListView
	palette *Palette
	size    Size
	fit     bool
}

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithListView sets the view refreshed on Append.
func WithListView(v ListView) StackOption {
	return func(s *Stack) {
		s.list = v
	}
}

// WithPalette sets the colour selector read by CurrentInk ops.
func WithPalette(p *Palette) StackOption {
	return func(s *Stack) {
		if p != nil {
			s.palette = p
		}
	}
}

// WithLayerSize changes the default hit-test box of new layers.
func WithLayerSize(sz Size) StackOption {
	return func(s *Stack) {
		s.size = sz
	}
}

// WithFitBounds makes new layers take their hit-test box from the extent
// of their paint (measured from the layer origin) instead of the default
// size. This changes which points pick a layer.
func WithFitBounds(on bool) StackOption {
	return func(s *Stack) {
		s.fit = on
	}
}

// NewStack returns an empty stack painting into surface.
func NewStack(surface Surface, opts ...StackOption) *Stack {
	s := &Stack{
		surface: surface,
		palette: NewPalette(nil),
		size:    DefaultLayerSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LayerOption adjusts a layer as it is appended.
type LayerOption func(*Layer)

// At places the new layer at p instead of the origin.
func At(p Point) LayerOption {
	return func(l *Layer) {
		l.Pos = p
	}
}

// Sized gives the new layer an explicit hit-test box.
func Sized(sz Size) LayerOption {
	return func(l *Layer) {
		l.Size = sz
	}
}

// Append adds a layer on top, refreshes the list view and redraws. The
// returned index is valid even when the redraw fails.
func (s *Stack) Append(name string, paint Paint, opts ...LayerOption) (int, error) {
	l := NewLayer(name, paint)
	l.Size = s.size
	if s.fit {
		if m := paint.Bounds().Max(); m.X > 0 && m.Y > 0 {
			l.Size = Size{W: m.X, H: m.Y}
		}
	}
	for _, opt := range opts {
		opt(&l)
	}
	s.layers = append(s.layers, l)
	i := len(s.layers) - 1
	Logger().Info("layer added", "index", i, "name", name,
		"pos", l.Pos, "size", l.Size)

	if s.list != nil {
		s.list.Refresh(s.Names())
	}
	return i, s.Redraw()
}

// Toggle flips the visibility of layer i and redraws. Out-of-range
// indices are ignored.
func (s *Stack) Toggle(i int) error {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	s.layers[i].Visible = !s.layers[i].Visible
	Logger().Debug("layer toggled", "index", i, "visible", s.layers[i].Visible)
	return s.Redraw()
}

// Move sets the position of layer i and redraws. Out-of-range indices
// are ignored.
func (s *Stack) Move(i int, p Point) error {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	s.layers[i].Pos = p
	return s.Redraw()
}

// Redraw clears the surface and paints every layer in index order. A
// failing layer stops the frame; later layers are not painted.
func (s *Stack) Redraw() error {
	s.surface.Clear()
	current := s.palette.Current()
	for i := range s.layers {
		l := &s.layers[i]
		if err := l.Draw(s.surface, current); err != nil {
			return fmt.Errorf("draw layer %d (%s): %w", i, l.Name, err)
		}
	}
	Logger().Debug("redraw", "layers", len(s.layers))
	return nil
}

// HitTest returns the first layer, scanning from index 0 up, whose box
// contains p. With overlapping layers the earliest appended wins even
// though a later one is painted over it. Hidden layers still count.
func (s *Stack) HitTest(p Point) (int, bool) {
	for i := range s.layers {
		if s.layers[i].Bounds().Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Get returns a copy of layer i.
func (s *Stack) Get(i int) (Layer, bool) {
	if i < 0 || i >= len(s.layers) {
		return Layer{}, false
	}
	l := s.layers[i]
	l.Paint = slices.Clone(l.Paint)
	return l, true
}

// Names returns the layer names in index order.
func (s *Stack) Names() []string {
	names := make([]string, len(s.layers))
	for i := range s.layers {
		names[i] = s.layers[i].Name
	}
	return names
}

// Palette returns the colour selector the stack paints with.
func (s *Stack) Palette() *Palette {
	return s.palette
}
