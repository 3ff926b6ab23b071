package draw

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/object"
	"github.com/rohanliston/html5-asteroids/internal/shape"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

// SGR parameters for the default palette.
var (
	sgrGreen  = termenv.RGBColor("#008000").Sequence(false)
	sgrGrey   = termenv.RGBColor("#808080").Sequence(false)
	sgrOrange = termenv.RGBColor("#ffa500").Sequence(false)
	sgrFlash  = termenv.RGBColor("#445544").Sequence(false)
)

func newTestWorld() *world.World {
	cfg := config.Default()
	cfg.Session.Asteroids = 0
	w := world.New(cfg)
	w.Initialize()
	return w
}

func drawScene(w *world.World) string {
	c := NewScaledCanvas(80, 30, 800, 600)
	NewScene(shape.Default()).Draw(c, w)
	return render(c)
}

func TestSceneDrawsShip(t *testing.T) {
	out := drawScene(newTestWorld())
	if !strings.Contains(out, sgrGreen) {
		t.Error("expected the ship in green")
	}
	if strings.Contains(out, sgrOrange) {
		t.Error("expected no thruster while coasting")
	}
}

func TestSceneDrawsThruster(t *testing.T) {
	w := newTestWorld()
	w.ProcessInput(world.Intents{Accelerate: true})

	if !strings.Contains(drawScene(w), sgrOrange) {
		t.Error("expected the thruster in orange")
	}
}

func TestSceneSkipsBrokenAsteroids(t *testing.T) {
	w := newTestWorld()
	a := object.NewAsteroid(geom.Point{X: 100, Y: 100}, 0, geom.Point{})
	w.Spawn(a)

	if !strings.Contains(drawScene(w), sgrGrey) {
		t.Fatal("expected the asteroid in grey")
	}

	a.Broken = true
	if strings.Contains(drawScene(w), sgrGrey) {
		t.Error("expected broken asteroid to be hidden")
	}
}

func TestSceneFlash(t *testing.T) {
	w := newTestWorld()
	w.Spawn(object.NewAsteroid(geom.Point{X: 100, Y: 100}, 0, geom.Point{}))
	w.Spawn(object.NewMissile(geom.Point{X: 100, Y: 100}, 0, 0, object.MissileLifetime))
	w.Tick(16*time.Millisecond, world.Intents{})
	if !w.Flash() {
		t.Fatal("expected a flash tick")
	}

	out := drawScene(w)
	if !strings.Contains(out, sgrFlash) {
		t.Error("expected the flash colour")
	}
	if strings.Contains(out, sgrGreen) {
		t.Error("expected entities hidden during the flash")
	}
}

func TestThrusterOutlineBehindShip(t *testing.T) {
	ship := object.NewShip(geom.Point{X: 100, Y: 100}, 0, geom.Point{}, 0.1, 10)
	pts := thrusterOutline(ship, nil)

	if len(pts) != thrusterSegments+1 {
		t.Fatalf("expected %d points, got %d", thrusterSegments+1, len(pts))
	}
	for _, p := range pts {
		if p.X > 100+thrusterOffset+1e-9 {
			t.Errorf("expected flame behind the ship, got %+v", p)
		}
	}
}

func TestHUDText(t *testing.T) {
	tests := []struct {
		name string
		st   world.Status
		want string
	}{
		{"playing", world.Status{Lives: 3}, ""},
		{"respawn", world.Status{Lives: 2, RespawnAvailable: true}, RespawnText},
		{"game over", world.Status{GameOver: true}, GameOverText},
		{"won", world.Status{Lives: 1, GameWon: true}, GameWonText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageText(tt.st); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if got := FPSText(59.96); got != "FPS: 60.0" {
		t.Errorf("unexpected fps text %q", got)
	}
}

func TestHUDDraw(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	hud := NewHUD(&buf, shape.Default())

	hud.Draw(cw, world.Status{Score: 120, Lives: 2, RespawnAvailable: true, FPS: 58}, 80, 24)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"SCORE: 120", "LIVES: 2", "FPS: 58.0", RespawnText} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in HUD output", want)
		}
	}
}
