// Package board is the layer model of the drawing board: an ordered
// stack of named layers painted back to front on a Surface, a drag
// controller that moves one layer with the pointer, and the colour
// selector read by palette-coloured layers.
//
// Everything runs on the caller's goroutine. Each mutation (append,
// toggle, drag move) repaints the whole surface before returning.
//
//	canvas := raster.NewCanvas(800, 600)
//	s := board.NewSession(canvas)
//	s.Add(board.ActionWindow)
//	s.PointerDown(board.Pt(50, 50))
//	s.PointerMove(board.Pt(80, 90))
//	s.PointerUp()
package board
