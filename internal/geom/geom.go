// Package geom provides the 2D value types shared by the simulation and renderers.
package geom

import "math"

// Point is a 2D vector. It is used both as a position and as a velocity.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: length * cos, Y: length * sin}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, so Top <= Bottom.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle. Negative extents are clamped to zero.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: math.Max(width, 0), Height: math.Max(height, 0)}
}

// CenteredAt returns a width x height rectangle whose centre is c.
func CenteredAt(c Point, width, height float64) Rect {
	return NewRect(c.X-width/2, c.Y-height/2, width, height)
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) TopLeft() Point     { return Point{X: r.X, Y: r.Y} }
func (r Rect) TopRight() Point    { return Point{X: r.X + r.Width, Y: r.Y} }
func (r Rect) BottomRight() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }
func (r Rect) BottomLeft() Point  { return Point{X: r.X, Y: r.Y + r.Height} }

// Centre returns the midpoint of the rectangle.
func (r Rect) Centre() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Overlaps reports whether r and o share any point. Touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Left() > o.Right() ||
		r.Right() < o.Left() ||
		r.Top() > o.Bottom() ||
		r.Bottom() < o.Top())
}
