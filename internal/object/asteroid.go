package object

import (
	"math"
	"math/rand"

	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/shape"
)

const (
	AsteroidDebrisCount = 5
	asteroidDebrisSpeed = 5.0
	maxAsteroidSpin     = 0.001 // Radians per tick
)

// Asteroid is a drifting rock. Once broken it stops moving and waits to be
// swept out of the world.
type Asteroid struct {
	Body
	Broken bool
}

// NewAsteroid creates an asteroid with a random spin in either direction.
func NewAsteroid(location geom.Point, rotation float64, velocity geom.Point) *Asteroid {
	spin := rand.Float64() * maxAsteroidSpin
	if rand.Float64() <= 0.5 {
		spin = -spin
	}
	return &Asteroid{
		Body: Body{
			Entity:       NewEntity(shape.Default().Asteroid, location, rotation),
			Velocity:     velocity,
			RotationRate: spin,
		},
	}
}

// NewRandomAsteroid creates an asteroid anywhere in the arena, heading in a
// random direction at a speed in [0,1) with a rotation in [0,1).
func NewRandomAsteroid(arena Arena) *Asteroid {
	direction := rand.Float64() * 2 * math.Pi
	speed := rand.Float64()
	location := geom.Point{X: rand.Float64() * arena.Width, Y: rand.Float64() * arena.Height}
	return NewAsteroid(location, rand.Float64(), geom.FromAngle(direction, speed))
}

// Update moves the asteroid unless it is broken.
func (a *Asteroid) Update(ctx UpdateContext) {
	if a.Broken {
		return
	}
	a.Integrate(ctx.Arena)
}

// BreakApart scatters the asteroid into debris and marks it broken.
// Calling it again spawns another burst.
func (a *Asteroid) BreakApart(sp Spawner) {
	color := shape.Default().AsteroidDebris
	for i := 0; i < AsteroidDebrisCount; i++ {
		sp.Spawn(NewDebris(a.Location, rand.Float64()*2*math.Pi, rand.Float64()*asteroidDebrisSpeed, color))
	}
	a.Broken = true
}
