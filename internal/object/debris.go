package object

import (
	"math/rand"

	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/shape"
)

const (
	minDebrisSize     = 2.0
	debrisSizeRange   = 5.0
	maxDebrisSpin     = 0.5
	maxDebrisLifetime = 100.0
)

// Debris is a short-lived fragment: a line segment of random length that
// spins and drifts until its lifetime runs out.
type Debris struct {
	Body
	LifeTime float64 // Ticks remaining, not necessarily whole
}

// NewDebris creates a fragment at location moving along direction.
func NewDebris(location geom.Point, direction, speed float64, color shape.Color) *Debris {
	size := minDebrisSize + rand.Float64()*debrisSizeRange
	geometry := []geom.Point{{X: -size, Y: 0}, {X: size, Y: 0}}
	return &Debris{
		Body: Body{
			Entity:       newEntity(geometry, location, direction, color, color, size, size),
			Velocity:     geom.FromAngle(direction, speed),
			RotationRate: rand.Float64() * maxDebrisSpin,
		},
		LifeTime: rand.Float64() * maxDebrisLifetime,
	}
}

// Update moves the fragment and counts down its lifetime by one tick.
func (d *Debris) Update(ctx UpdateContext) {
	d.Integrate(ctx.Arena)
	d.LifeTime--
}

// IsDead reports whether the fragment has expired.
func (d *Debris) IsDead() bool {
	return d.LifeTime < 0
}
