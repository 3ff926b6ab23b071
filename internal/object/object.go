// Package object implements the simulated entities: the ship, asteroids,
// missiles and debris. Every kind is built by composition: a Body (motion)
// embeds an Entity (outline, placement, bounding box).
package object

import (
	"time"

	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/physics"
	"github.com/rohanliston/html5-asteroids/internal/shape"
)

// Spawner allows objects to create new objects during an update.
type Spawner interface {
	Spawn(obj Object)
}

// Object is a simulated entity owned by the world.
type Object interface {
	physics.Bounded
	Update(ctx UpdateContext)
}

// UpdateContext provides everything an object needs during update.
type UpdateContext struct {
	// Delta is the wall time since the previous tick. Motion, spin and
	// lifetimes advance once per tick and do not scale with it.
	Delta time.Duration
	Arena Arena
}

// Arena is the wrap-around play area, [0,Width] x [0,Height].
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() geom.Point {
	return geom.Point{X: a.Width / 2, Y: a.Height / 2}
}

// Wrap moves a point that has crossed an edge to the opposite edge.
// A point lying exactly on an edge is left where it is.
func (a Arena) Wrap(p *geom.Point) {
	if p.X > a.Width {
		p.X = 0
	} else if p.X < 0 {
		p.X = a.Width
	}

	if p.Y > a.Height {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = a.Height
	}
}

// Entity is a positioned, rotated, bounded, drawable object.
type Entity struct {
	Geometry []geom.Point // Closed outline in local space; the first point closes it
	Location geom.Point   // World position
	Rotation float64      // Radians
	Stroke   shape.Color
	Fill     shape.Color
	Box      geom.Rect // Always centred on Location with fixed extents
}

// NewEntity places a copy of sh at location.
func NewEntity(sh shape.Shape, location geom.Point, rotation float64) Entity {
	return newEntity(sh.Clone(), location, rotation, sh.Stroke, sh.Fill, sh.Width, sh.Height)
}

func newEntity(geometry []geom.Point, location geom.Point, rotation float64, stroke, fill shape.Color, boxWidth, boxHeight float64) Entity {
	return Entity{
		Geometry: geometry,
		Location: location,
		Rotation: rotation,
		Stroke:   stroke,
		Fill:     fill,
		Box:      geom.CenteredAt(location, boxWidth, boxHeight),
	}
}

// Refresh recentres the bounding box on the current location.
func (e *Entity) Refresh() {
	e.Box.X = e.Location.X - e.Box.Width/2
	e.Box.Y = e.Location.Y - e.Box.Height/2
}

// Update is the base update: it only refreshes the bounding box.
func (e *Entity) Update(UpdateContext) {
	e.Refresh()
}

// Bounds returns the bounding box (implements physics.Bounded).
func (e *Entity) Bounds() geom.Rect {
	return e.Box
}

// CollidesWith reports whether the bounding boxes of e and other overlap.
func (e *Entity) CollidesWith(other physics.Bounded) bool {
	return physics.Colliding(e, other)
}

// Outline appends the outline transformed into world space to dst.
// The outline is rotated about the local origin, then moved to Location.
func (e *Entity) Outline(dst []geom.Point) []geom.Point {
	dst = dst[:0]
	for _, p := range e.Geometry {
		dst = append(dst, p.Rotate(e.Rotation).Add(e.Location))
	}
	return dst
}

// Body is an entity that moves every tick.
type Body struct {
	Entity
	Velocity     geom.Point // Units per tick
	RotationRate float64    // Radians per tick
}

// Integrate advances the body by one tick: move, spin, wrap, refresh the box.
func (b *Body) Integrate(arena Arena) {
	b.Location = b.Location.Add(b.Velocity)
	b.Rotation += b.RotationRate
	arena.Wrap(&b.Location)
	b.Refresh()
}
