package object

import (
	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/shape"
)

// MissileSpeed is the launch speed in units per tick.
const MissileSpeed = 5.0

// MissileLifetime is how many ticks a missile flies before it expires.
const MissileLifetime = 100

// Missile is a shot fired by the ship. It does not inherit the ship's velocity.
type Missile struct {
	Body
	LifeTime int // Ticks remaining
}

// NewMissile creates a missile at location travelling along direction.
func NewMissile(location geom.Point, direction, speed float64, lifetime int) *Missile {
	return &Missile{
		Body: Body{
			Entity:   NewEntity(shape.Default().Missile, location, 0),
			Velocity: geom.FromAngle(direction, speed),
		},
		LifeTime: lifetime,
	}
}

// Update moves the missile and counts down its lifetime.
func (m *Missile) Update(ctx UpdateContext) {
	m.Integrate(ctx.Arena)
	m.LifeTime--
}

// IsDead reports whether the missile has expired.
func (m *Missile) IsDead() bool {
	return m.LifeTime < 0
}
