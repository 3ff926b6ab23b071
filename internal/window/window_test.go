package window

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

func createTestGame() *Game {
	cfg := config.Default()
	cfg.Session.Asteroids = 0
	return NewGame(cfg, log.New(io.Discard))
}

func TestKeyIntents(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyLeft: true, ebiten.KeySpace: true}
	got := keyIntents(func(k ebiten.Key) bool { return held[k] })

	want := world.Intents{Accelerate: true, TurnLeft: true, Fire: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLayoutResizesArena(t *testing.T) {
	g := createTestGame()

	w, h := g.Layout(1024, 768)

	if w != 1024 || h != 768 {
		t.Errorf("expected 1024x768, got %dx%d", w, h)
	}
	if a := g.World().Arena(); a.Width != 1024 || a.Height != 768 {
		t.Errorf("expected arena 1024x768, got %vx%v", a.Width, a.Height)
	}
}

func TestContinueGameWhilePlaying(t *testing.T) {
	g := createTestGame()
	g.world.Tick(0, world.Intents{})
	if g.world.Ship() == nil {
		t.Fatal("expected a ship")
	}

	g.continueGame()
	if g.world.Status().Lives != 3 {
		t.Error("expected continue to do nothing while playing")
	}
}

func TestColorTransparent(t *testing.T) {
	g := createTestGame()
	if _, ok := g.color("transparent"); ok {
		t.Error("expected transparent to have no colour")
	}
	if _, ok := g.color(g.shapes.Ship.Stroke); !ok {
		t.Error("expected the ship stroke to resolve")
	}
}
