package ggplot

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle given by its minimum corner and size.
type Rect struct {
	X, Y, W, H float64
}

// EmptyRect returns a rectangle that any Union overrides.
func EmptyRect() Rect {
	return Rect{X: math.Inf(1), Y: math.Inf(1), W: math.Inf(-1), H: math.Inf(-1)}
}

// IsEmpty reports whether r encloses no area and no point.
func (r Rect) IsEmpty() bool {
	return math.IsInf(r.X, 1) || r.W < 0 || r.H < 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Top(), o.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// AddPoint grows r to include p.
func (r Rect) AddPoint(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Intersect returns the overlap of r and o, or EmptyRect when they are
// disjoint.
func (r Rect) Intersect(o Rect) Rect {
	if r.IsEmpty() || o.IsEmpty() {
		return EmptyRect()
	}
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Top(), o.Top())
	if x1 < x0 || y1 < y0 {
		return EmptyRect()
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Corners returns the four corners, starting at the minimum corner.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Top()},
		{X: r.X, Y: r.Top()},
	}
}
