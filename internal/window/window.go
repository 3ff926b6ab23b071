// Package window runs the game in a desktop window using ebiten.
package window

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/draw"
	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/object"
	"github.com/rohanliston/html5-asteroids/internal/shape"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

const strokeWidth = 1

// Game adapts a World to ebiten.Game. The window size is the arena size.
type Game struct {
	world   *world.World
	shapes  *shape.Set
	logger  *log.Logger
	last    time.Time
	outline []geom.Point
}

var _ ebiten.Game = (*Game)(nil)

// NewGame starts a new game.
func NewGame(cfg *config.Config, logger *log.Logger) *Game {
	w := world.New(cfg)
	w.Initialize()
	return &Game{
		world:  w,
		shapes: shape.Default(),
		logger: logger,
	}
}

// Update runs one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.continueGame()
	}

	prev := g.world.Status()
	g.world.Tick(elapsed, keyIntents(ebiten.IsKeyPressed))
	if st := g.world.Status(); st.Lives < prev.Lives {
		g.logger.Info("life lost", "lives", st.Lives, "score", st.Score)
	}
	return nil
}

// continueGame restarts a finished game or respawns the ship.
func (g *Game) continueGame() {
	st := g.world.Status()
	switch {
	case st.GameOver || st.GameWon:
		g.logger.Info("new game", "previous_score", st.Score)
		g.world.Initialize()
	case st.RespawnAvailable:
		g.world.SpawnPlayer()
	}
}

// keyIntents reads the ship controls through pressed.
func keyIntents(pressed func(ebiten.Key) bool) world.Intents {
	return world.Intents{
		Accelerate: pressed(ebiten.KeyUp) || pressed(ebiten.KeyW),
		TurnLeft:   pressed(ebiten.KeyLeft) || pressed(ebiten.KeyA),
		TurnRight:  pressed(ebiten.KeyRight) || pressed(ebiten.KeyD),
		Fire:       pressed(ebiten.KeySpace),
	}
}

// Draw paints the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.world.Flash() {
		if c, ok := g.color(g.shapes.Flash); ok {
			screen.Fill(c)
		}
	} else {
		g.drawEntities(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	if ship := g.world.Ship(); ship != nil {
		g.stroke(screen, &ship.Entity, ship.Stroke)
		if ship.Accelerating {
			g.thruster(screen, ship)
		}
	}
	for _, m := range g.world.Missiles() {
		g.stroke(screen, &m.Entity, m.Stroke)
	}
	for _, a := range g.world.Asteroids() {
		if !a.Broken {
			g.stroke(screen, &a.Entity, a.Stroke)
		}
	}
	for _, d := range g.world.Debris() {
		g.stroke(screen, &d.Entity, d.Stroke)
	}
}

// stroke draws the closed outline of e. Fills are not drawn: every fill in
// the shape table is either transparent or the black background.
func (g *Game) stroke(screen *ebiten.Image, e *object.Entity, name shape.Color) {
	c, ok := g.color(name)
	if !ok {
		return
	}
	g.outline = e.Outline(g.outline)
	polyline(screen, g.outline, c, len(g.outline) > 2)
}

// thruster draws a short flame behind the ship.
func (g *Game) thruster(screen *ebiten.Image, ship *object.Ship) {
	c, ok := g.color(g.shapes.Thruster)
	if !ok {
		return
	}
	tail := geom.Point{X: -10}.Rotate(ship.Rotation).Add(ship.Location)
	vector.DrawFilledCircle(screen, float32(tail.X), float32(tail.Y), 3, c, true)
}

func polyline(screen *ebiten.Image, pts []geom.Point, c color.Color, closed bool) {
	n := len(pts)
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		a, b := pts[i], pts[(i+1)%n]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, c, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.world.Status()
	width := int(g.world.Arena().Width)

	ebitenutil.DebugPrintAt(screen, draw.ScoreText(st.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, draw.LivesText(st.Lives), 10, 26)
	ebitenutil.DebugPrintAt(screen, draw.FPSText(ebiten.ActualFPS()), width-90, 10)

	if msg := draw.MessageText(st); msg != "" {
		// The debug font is 6 pixels wide.
		x := (width - 6*len(msg)) / 2
		ebitenutil.DebugPrintAt(screen, msg, max(x, 0), int(g.world.Arena().Height)/2)
	}
}

func (g *Game) color(name shape.Color) (color.Color, bool) {
	c, ok := g.shapes.RGB(name)
	if !ok {
		return nil, false
	}
	return c, true
}

// Layout keeps one world unit per pixel: resizing the window resizes the arena.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// World returns the simulated world.
func (g *Game) World() *world.World {
	return g.world
}
