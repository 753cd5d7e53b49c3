// Package raster implements the drawing surface on a software gg
// context and writes it out as PNG or JPEG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/mockboard/internal/board"
)

// Canvas is a board.Surface backed by an in-memory gg context.
type Canvas struct {
	dc         *gg.Context
	source     *text.FontSource
	faces      map[float64]text.Face
	background color.Color
	frames     uint64
}

var _ board.Surface = (*Canvas)(nil)

type options struct {
	fontPath   string
	background color.Color
}

// Option configures a Canvas.
type Option func(*options)

// WithFont loads text glyphs from a TrueType/OpenType file instead of the
// built-in Go Regular.
func WithFont(path string) Option {
	return func(o *options) {
		o.fontPath = path
	}
}

// WithBackground makes Clear fill with c. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// NewCanvas returns a cleared w x h canvas.
func NewCanvas(w, h int, opts ...Option) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		src *text.FontSource
		err error
	)
	if o.fontPath != "" {
		src, err = text.NewFontSourceFromFile(o.fontPath)
	} else {
		src, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	c := &Canvas{
		dc:         gg.NewContext(w, h),
		source:     src,
		faces:      make(map[float64]text.Face),
		background: o.background,
	}
	c.Clear()
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Frames counts how many times the canvas has been cleared, which is once
// per redraw. Callers mirroring the pixels elsewhere compare it to know
// when to copy again.
func (c *Canvas) Frames() uint64 { return c.frames }

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Clear wipes the whole canvas to the background colour.
func (c *Canvas) Clear() {
	if c.background == nil {
		c.dc.Clear()
	} else {
		c.dc.ClearWithColor(gg.FromColor(c.background))
	}
	c.frames++
}

func (c *Canvas) Push() { c.dc.Push() }

func (c *Canvas) Pop() { c.dc.Pop() }

func (c *Canvas) Translate(dx, dy float64) { c.dc.Translate(dx, dy) }

func (c *Canvas) FillRect(r board.Rect, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.W, r.H)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("fill rect: %w", err)
	}
	return nil
}

func (c *Canvas) StrokeRect(r board.Rect, col color.Color, width float64) error {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.W, r.H)
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke rect: %w", err)
	}
	return nil
}

// DrawText draws s with its baseline at at, in the current transform.
func (c *Canvas) DrawText(s string, at board.Point, size float64, col color.Color) error {
	if s == "" || size <= 0 {
		return nil
	}
	face, ok := c.faces[size]
	if !ok {
		face = c.source.Face(size)
		c.faces[size] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, at.X, at.Y)
	return nil
}

// Straight returns the pixels in row order with straight (not
// premultiplied) alpha, reusing dst when it is large enough.
func (c *Canvas) Straight(dst []color.RGBA) []color.RGBA {
	src := c.Image()
	img, ok := src.(*image.RGBA)
	if !ok {
		return straightSlow(src, dst)
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	dst = slices.Grow(dst[:0], w*h)[:w*h]
	i := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := 0; x < len(row); x += 4 {
			dst[i] = unpremultiply(row[x], row[x+1], row[x+2], row[x+3])
			i++
		}
	}
	return dst
}

func unpremultiply(r, g, b, a uint8) color.RGBA {
	switch a {
	case 0:
		return color.RGBA{}
	case 0xff:
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	div := func(v uint8) uint8 { return uint8((uint32(v)*0xff + uint32(a)/2) / uint32(a)) }
	return color.RGBA{R: div(r), G: div(g), B: div(b), A: a}
}

func straightSlow(img image.Image, dst []color.RGBA) []color.RGBA {
	b := img.Bounds()
	dst = dst[:0]
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst = append(dst, color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A})
		}
	}
	return dst
}

// Close releases the context and font.
func (c *Canvas) Close() error {
	err := c.dc.Close()
	if cerr := c.source.Close(); err == nil {
		err = cerr
	}
	return err
}
