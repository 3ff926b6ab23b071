// Package physics provides collision detection between bounded objects.
package physics

import "github.com/rohanliston/html5-asteroids/internal/geom"

// Bounded is anything with an axis-aligned bounding box.
type Bounded interface {
	Bounds() geom.Rect
}

// Colliding reports whether the bounding boxes of a and b overlap.
// Shared edges count as overlap. An absent object never collides.
func Colliding(a, b Bounded) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Bounds().Overlaps(b.Bounds())
}
