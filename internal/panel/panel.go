// Package panel lays out the window chrome around the canvas: the tool
// bar and colour swatches on the left, the layer list on the right and
// the viewport in between. It only does geometry; drawing is left to the
// window.
package panel

import (
	"slices"

	"github.com/ha1tch/mockboard/internal/board"
)

const (
	LeftWidth  = 100
	RightWidth = 200
	TopHeight  = 50

	buttonW       = 80
	buttonH       = 28
	buttonStep    = 34
	toolbarTop    = 40
	swatchSize    = 20
	swatchStep    = 25
	swatchPerRow  = 3
	swatchGap     = 30
	rowH          = 30
	rowStep       = 36
	listTop       = TopHeight + 10
	listMargin    = 10
	visibleMarker = 20
)

// Layout is the window arrangement for a canvas of a given size.
type Layout struct {
	CanvasW, CanvasH int
}

// ScreenSize returns the window size needed to show the whole canvas.
func (l Layout) ScreenSize() (w, h int) {
	return LeftWidth + l.CanvasW + RightWidth, TopHeight + l.CanvasH
}

// Viewport returns where the canvas sits on screen.
func (l Layout) Viewport() Viewport {
	return Viewport{Rect: board.R(LeftWidth, TopHeight, float64(l.CanvasW), float64(l.CanvasH))}
}

// RightPanel returns the layer panel area.
func (l Layout) RightPanel() board.Rect {
	_, h := l.ScreenSize()
	return board.R(float64(LeftWidth+l.CanvasW), 0, RightWidth, float64(h))
}

// Viewport maps screen coordinates onto the canvas.
type Viewport struct {
	Rect board.Rect
}

// Contains reports whether screen point p is over the canvas.
func (v Viewport) Contains(p board.Point) bool {
	return v.Rect.Contains(p)
}

// ToCanvas converts a screen point to canvas coordinates. Points outside
// the viewport map outside the canvas; drags are not clamped.
func (v Viewport) ToCanvas(p board.Point) board.Point {
	return p.Sub(v.Rect.Min)
}

// Button is a clickable labelled rectangle.
type Button struct {
	Rect  board.Rect
	Label string
	Hover bool
}

// Toolbar stacks one button per label down the left panel.
func Toolbar(labels []string) []Button {
	buttons := make([]Button, len(labels))
	for i, label := range labels {
		buttons[i] = Button{
			Rect:  board.R(10, float64(toolbarTop+i*buttonStep), buttonW, buttonH),
			Label: label,
		}
	}
	return buttons
}

// UpdateHover marks the button under p.
func UpdateHover(buttons []Button, p board.Point) {
	for i := range buttons {
		buttons[i].Hover = buttons[i].Rect.Contains(p)
	}
}

// ButtonAt returns the index of the button under p, or -1.
func ButtonAt(buttons []Button, p board.Point) int {
	for i := range buttons {
		if buttons[i].Rect.Contains(p) {
			return i
		}
	}
	return -1
}

// SwatchesTop is the y at which the swatch grid starts below a tool bar
// of n buttons.
func SwatchesTop(n int) float64 {
	return float64(toolbarTop + n*buttonStep + swatchGap)
}

// Swatches lays out n colour swatches three to a row starting at top.
func Swatches(n int, top float64) []board.Rect {
	rects := make([]board.Rect, n)
	for i := range rects {
		x := float64(10 + (i%swatchPerRow)*swatchStep)
		y := top + float64((i/swatchPerRow)*swatchStep)
		rects[i] = board.R(x, y, swatchSize, swatchSize)
	}
	return rects
}

// SwatchAt returns the index of the swatch under p, or -1.
func SwatchAt(rects []board.Rect, p board.Point) int {
	for i, r := range rects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// Row is one entry of the layer list.
type Row struct {
	Index int
	Name  string
	Rect  board.Rect
	// Marker is the visibility box at the left of the row.
	Marker board.Rect
}

// LayerList is the layer panel. It implements board.ListView; rows are in
// append order, top to bottom, and row i stands for layer i.
type LayerList struct {
	left  float64
	names []string
}

var _ board.ListView = (*LayerList)(nil)

// NewLayerList returns an empty list placed in l's right panel.
func NewLayerList(l Layout) *LayerList {
	return &LayerList{left: l.RightPanel().Min.X}
}

// Refresh replaces the rows with names.
func (ll *LayerList) Refresh(names []string) {
	ll.names = slices.Clone(names)
}

// Len returns the number of rows.
func (ll *LayerList) Len() int {
	return len(ll.names)
}

// Rows returns the laid-out rows.
func (ll *LayerList) Rows() []Row {
	rows := make([]Row, len(ll.names))
	for i, name := range ll.names {
		r := board.R(ll.left+listMargin, float64(listTop+i*rowStep), RightWidth-2*listMargin, rowH)
		rows[i] = Row{
			Index:  i,
			Name:   name,
			Rect:   r,
			Marker: board.R(r.Min.X+5, r.Min.Y+5, visibleMarker, visibleMarker),
		}
	}
	return rows
}

// RowAt returns the layer index of the row under p, or -1. Clicking
// anywhere on a row asks for that layer's visibility to be toggled.
func (ll *LayerList) RowAt(p board.Point) int {
	for _, row := range ll.Rows() {
		if row.Rect.Contains(p) {
			return row.Index
		}
	}
	return -1
}
