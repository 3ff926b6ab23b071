package object

import (
	"math"
	"math/rand"

	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/shape"
)

// Ship tuning that is not part of the session config.
const (
	TurnStep          = 3 * math.Pi / 180 // Radians per Turn call
	InitialShootTimer = 31                // Ticks already elapsed when a ship spawns
	ShipDebrisCount   = 20
	shipDebrisSpeed   = 10.0 // Upper bound, debris speed is uniform in [0, shipDebrisSpeed)
)

// Ship is the player-controlled spaceship. It has no drag: once accelerated
// it drifts until accelerated the other way.
type Ship struct {
	Body

	AccelerationRate float64 // Velocity gained per Accelerate call
	FireRate         int     // Shots need ShootTimer > FireRate
	ShootTimer       int     // Ticks since the last shot
	Accelerating     bool    // Thrusting this tick (drawn as a flame)
}

// NewShip creates a ship at location.
func NewShip(location geom.Point, rotation float64, velocity geom.Point, accelerationRate float64, fireRate int) *Ship {
	return &Ship{
		Body: Body{
			Entity:   NewEntity(shape.Default().Ship, location, rotation),
			Velocity: velocity,
		},
		AccelerationRate: accelerationRate,
		FireRate:         fireRate,
		ShootTimer:       InitialShootTimer,
	}
}

// Update moves the ship and advances the shot timer.
func (s *Ship) Update(ctx UpdateContext) {
	s.Integrate(ctx.Arena)
	s.ShootTimer++
}

// Accelerate adds thrust along the current heading.
func (s *Ship) Accelerate() {
	s.Velocity = s.Velocity.Add(geom.FromAngle(s.Rotation, s.AccelerationRate))
	s.Accelerating = true
}

// StopAccelerating clears the thrust flag. Velocity is kept.
func (s *Ship) StopAccelerating() {
	s.Accelerating = false
}

// Turn rotates the ship one step clockwise (direction > 0) or
// anticlockwise (direction < 0), keeping the heading within (-π, π).
func (s *Ship) Turn(direction int) {
	switch {
	case direction > 0:
		s.Rotation += TurnStep
		if s.Rotation >= math.Pi {
			s.Rotation -= 2 * math.Pi
		}
	case direction < 0:
		s.Rotation -= TurnStep
		if s.Rotation <= -math.Pi {
			s.Rotation += 2 * math.Pi
		}
	}
}

// Front returns the point missiles are launched from. Both axes of the nose
// offset are scaled by sin of the current heading, not by a rotation matrix,
// so the launch point follows the ship as it turns. A heading of 0 launches
// from the centre.
func (s *Ship) Front() geom.Point {
	nose := s.Geometry[0]
	sin := math.Sin(s.Rotation)
	return geom.Point{
		X: s.Location.X + nose.X*sin,
		Y: s.Location.Y + nose.Y*sin,
	}
}

// Shoot launches a missile from the front of the ship if the shot timer has
// passed the fire rate. It reports whether a missile was fired.
func (s *Ship) Shoot(sp Spawner) bool {
	if s.ShootTimer <= s.FireRate {
		return false
	}
	sp.Spawn(NewMissile(s.Front(), s.Rotation, MissileSpeed, MissileLifetime))
	s.ShootTimer = 0
	return true
}

// Explode scatters the ship into debris.
func (s *Ship) Explode(sp Spawner) {
	color := shape.Default().ShipDebris
	for i := 0; i < ShipDebrisCount; i++ {
		sp.Spawn(NewDebris(s.Location, rand.Float64()*2*math.Pi, rand.Float64()*shipDebrisSpeed, color))
	}
}
