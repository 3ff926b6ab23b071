package world

import (
	"time"

	"github.com/rohanliston/html5-asteroids/internal/object"
)

// Tick advances the world by one step. elapsed is the wall time since the
// previous tick and only feeds the FPS meter.
func (w *World) Tick(elapsed time.Duration, in Intents) {
	w.flash = false
	w.delta = elapsed
	w.updateFPS(elapsed)

	w.ProcessInput(in)
	ctx := w.updateContext()

	if w.ship != nil {
		w.ship.Update(ctx)
	}
	w.updateMissiles(ctx)
	w.updateAsteroids(ctx)
	w.updateDebris(ctx)

	w.checkCollisions()

	if w.score < 0 {
		w.score = 0
	}
	w.gameOver = w.lives == 0
	w.gameWon = len(w.asteroids) == 0 && len(w.debris) == 0 && w.lives > 0
}

// ProcessInput applies one tick of player intents to the ship. It does
// nothing while there is no ship.
func (w *World) ProcessInput(in Intents) {
	if w.ship == nil {
		return
	}

	if in.Accelerate {
		w.ship.Accelerate()
	} else {
		w.ship.StopAccelerating()
	}
	if in.TurnLeft {
		w.ship.Turn(-1)
	}
	if in.TurnRight {
		w.ship.Turn(1)
	}
	if in.Fire && w.ship.Shoot(w) {
		w.score -= ShotCost
	}
}

func (w *World) updateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta: w.delta,
		Arena: w.arena,
	}
}

// updateMissiles moves every missile, then drops the expired ones.
func (w *World) updateMissiles(ctx object.UpdateContext) {
	for _, m := range w.missiles {
		m.Update(ctx)
	}
	for i := len(w.missiles) - 1; i >= 0; i-- {
		if w.missiles[i].IsDead() {
			w.missiles = remove(w.missiles, i)
		}
	}
}

// updateAsteroids moves every asteroid and drops the ones broken during the
// previous tick.
func (w *World) updateAsteroids(ctx object.UpdateContext) {
	for i := len(w.asteroids) - 1; i >= 0; i-- {
		a := w.asteroids[i]
		a.Update(ctx)
		if a.Broken {
			w.asteroids = remove(w.asteroids, i)
		}
	}
}

func (w *World) updateDebris(ctx object.UpdateContext) {
	for i := len(w.debris) - 1; i >= 0; i-- {
		d := w.debris[i]
		d.Update(ctx)
		if d.IsDead() {
			w.debris = remove(w.debris, i)
		}
	}
}

// remove deletes s[i] keeping order.
func remove[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}
