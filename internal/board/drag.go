package board

// Drag moves one layer of a Stack with the pointer. It is Idle until a
// press lands on a layer, then Dragging until release.
type Drag struct {
	stack    *Stack
	dragging bool
	target   int
	grab     Point
}

// NewDrag returns an idle controller over stack.
func NewDrag(stack *Stack) *Drag {
	return &Drag{stack: stack, target: -1}
}

// Down starts a gesture at p. Any unfinished gesture is dropped first.
// The layer picked is the one Stack.HitTest reports; if there is none the
// controller stays idle. It reports whether a layer was captured.
func (d *Drag) Down(p Point) bool {
	d.Up()
	i, ok := d.stack.HitTest(p)
	if !ok {
		Logger().Debug("pointer down missed", "at", p)
		return false
	}
	l := &d.stack.layers[i]
	d.dragging = true
	d.target = i
	d.grab = p.Sub(l.Pos)
	Logger().Debug("drag start", "index", i, "name", l.Name, "grab", d.grab)
	return true
}

// Move puts the target's origin at p minus the grab offset and redraws.
// It does nothing while idle. Positions are not clamped to the surface.
func (d *Drag) Move(p Point) error {
	if !d.dragging {
		return nil
	}
	return d.stack.Move(d.target, p.Sub(d.grab))
}

// Up ends the gesture. Calling it while idle is harmless.
func (d *Drag) Up() {
	if d.dragging {
		Logger().Debug("drag end", "index", d.target)
	}
	d.dragging = false
	d.target = -1
	d.grab = Point{}
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Target returns the index being dragged.
func (d *Drag) Target() (int, bool) {
	return d.target, d.dragging
}
