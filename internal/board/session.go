package board

import "fmt"

// Session is the state of one editing session: the layers, the pointer
// gesture and the colour selector. Both the window and the headless
// renderer drive the board through it.
type Session struct {
	Stack   *Stack
	Drag    *Drag
	Palette *Palette
}

// NewSession builds a session on surface. The palette option, if any,
// is shared with the stack.
func NewSession(surface Surface, opts ...StackOption) *Session {
	st := NewStack(surface, opts...)
	return &Session{
		Stack:   st,
		Drag:    NewDrag(st),
		Palette: st.Palette(),
	}
}

// Add appends the preset called name.
func (s *Session) Add(name string) (int, error) {
	a, ok := Lookup(name)
	if !ok {
		return -1, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	return s.Stack.Append(a.Name, a.Paint)
}

// Toggle flips layer i's visibility.
func (s *Session) Toggle(i int) error {
	return s.Stack.Toggle(i)
}

// SetColor changes the palette. Nothing is repainted until the next redraw.
func (s *Session) SetColor(hex string) error {
	return s.Palette.SetHex(hex)
}

// PointerDown begins a drag if p is over a layer.
func (s *Session) PointerDown(p Point) bool {
	return s.Drag.Down(p)
}

// PointerMove drags the captured layer, if any.
func (s *Session) PointerMove(p Point) error {
	return s.Drag.Move(p)
}

// PointerUp ends the drag.
func (s *Session) PointerUp() {
	s.Drag.Up()
}
