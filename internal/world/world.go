// Package world holds the state of one game session and advances it tick by
// tick. A World is owned by exactly one driver goroutine.
package world

import (
	"time"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/object"
)

// Score changes.
const (
	AsteroidScore = 100 // Per asteroid break
	ShotCost      = 10  // Per missile fired
)

// Intents is the player input for one tick.
type Intents struct {
	Accelerate bool
	TurnLeft   bool
	TurnRight  bool
	Fire       bool
}

// Status is the read-only summary shown by the HUD.
type Status struct {
	Score            int
	Lives            int
	RespawnAvailable bool
	GameOver         bool
	GameWon          bool
	FPS              float64
	Flash            bool
}

// World is the complete state of a session: at most one ship plus the
// asteroids, missiles and debris in the arena.
type World struct {
	cfg   *config.Config
	arena object.Arena

	ship      *object.Ship // nil while dead or awaiting respawn
	asteroids []*object.Asteroid
	missiles  []*object.Missile
	debris    []*object.Debris

	score            int
	lives            int
	flash            bool
	respawnAvailable bool
	gameOver         bool
	gameWon          bool
	fps              float64

	delta time.Duration
}

// New returns an empty world sized from cfg. Call Initialize to start a game.
func New(cfg *config.Config) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	return &World{
		cfg: cfg,
		arena: object.Arena{
			Width:  cfg.Arena.Width,
			Height: cfg.Arena.Height,
		},
	}
}

// Initialize starts a new game: full lives, zero score, a fresh ship and the
// configured number of asteroids.
func (w *World) Initialize() {
	w.lives = w.cfg.Session.Lives
	w.score = 0
	w.flash = false
	w.respawnAvailable = false
	w.gameOver = false
	w.gameWon = false

	w.ship = nil
	w.asteroids = w.asteroids[:0]
	w.missiles = w.missiles[:0]
	w.debris = w.debris[:0]

	w.SpawnPlayer()
	for i := 0; i < w.cfg.Session.Asteroids; i++ {
		w.SpawnAsteroid()
	}
	w.gameOver = w.lives == 0
}

// SpawnPlayer places a new ship at the centre of the arena. It does nothing
// once all lives are spent.
func (w *World) SpawnPlayer() {
	if w.lives == 0 {
		return
	}
	w.ship = object.NewShip(w.arena.Center(), 0, geom.Point{}, w.cfg.Ship.Acceleration, w.cfg.Ship.FireRate)
	w.respawnAvailable = false
}

// SpawnAsteroid adds one randomly placed, randomly moving asteroid.
func (w *World) SpawnAsteroid() {
	w.Spawn(object.NewRandomAsteroid(w.arena))
}

// Spawn adds obj to the matching collection immediately, so it takes part
// in the rest of the current tick.
func (w *World) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Ship:
		w.ship = o
	case *object.Asteroid:
		w.asteroids = append(w.asteroids, o)
	case *object.Missile:
		w.missiles = append(w.missiles, o)
	case *object.Debris:
		w.debris = append(w.debris, o)
	}
}

// Resize changes the arena bounds used for wrapping.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.arena.Width = width
	w.arena.Height = height
}

// Arena returns the current arena bounds.
func (w *World) Arena() object.Arena { return w.arena }

// Ship returns the player's ship, or nil if there is none.
func (w *World) Ship() *object.Ship { return w.ship }

func (w *World) Asteroids() []*object.Asteroid { return w.asteroids }
func (w *World) Missiles() []*object.Missile { return w.missiles }
func (w *World) Debris() []*object.Debris { return w.debris }

// Flash reports whether something was destroyed during the last tick.
func (w *World) Flash() bool { return w.flash }

// Status returns the HUD summary.
func (w *World) Status() Status {
	return Status{
		Score:            w.score,
		Lives:            w.lives,
		RespawnAvailable: w.respawnAvailable,
		GameOver:         w.gameOver,
		GameWon:          w.gameWon,
		FPS:              w.fps,
		Flash:            w.flash,
	}
}
