package board

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// DefaultLayerSize is the bounding box every layer gets unless told otherwise.
var DefaultLayerSize = Size{W: 100, H: 100}

// Rect is an axis-aligned rectangle anchored at Min.
type Rect struct {
	Min Point
	Size
}

// R is shorthand for a Rect at (x, y) with size w x h.
func R(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.W, Y: r.Min.Y + r.H}
}

// Contains reports whether p lies in [x, x+w) x [y, y+h).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle covering r and s. Empty
// rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	minX, minY := min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)
	rm, sm := r.Max(), s.Max()
	maxX, maxY := max(rm.X, sm.X), max(rm.Y, sm.Y)
	return R(minX, minY, maxX-minX, maxY-minY)
}
