package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/input"
	"github.com/rohanliston/html5-asteroids/internal/object"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

func fixedSize() (int, int, error) { return 40, 12, nil }

func testConfig(lives int) *config.Config {
	cfg := config.Default()
	cfg.Session.Lives = lives
	cfg.Session.Asteroids = 0
	return cfg
}

// createTestSession returns a session whose input never arrives.
func createTestSession(t *testing.T, cfg *config.Config, logs io.Writer) *session {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	return newSession(context.Background(), bufio.NewReader(pr), io.Discard, Options{
		Config:       cfg,
		Logger:       log.New(logs),
		TermSizeFunc: fixedSize,
	})
}

// crashShip puts an asteroid on the ship and ticks once.
func crashShip(w *world.World) {
	w.Spawn(object.NewAsteroid(w.Ship().Location, 0, geom.Point{}))
	w.Tick(16*time.Millisecond, world.Intents{})
}

func TestRunQuitsOnKey(t *testing.T) {
	var out, logs bytes.Buffer
	err := Run(context.Background(), bufio.NewReader(strings.NewReader("q")), &out, Options{
		Config:       config.Default(),
		Logger:       log.New(&logs),
		TermSizeFunc: fixedSize,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\033[?25l") {
		t.Error("expected the cursor to be hidden first")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("expected the cursor to be restored last")
	}
	for _, want := range []string{"game started", "game ended"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected %q in logs %q", want, logs.String())
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), &out, Options{TermSizeFunc: fixedSize})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to stop after cancellation")
	}
	if !strings.Contains(out.String(), "SCORE: 0") {
		t.Error("expected at least one frame with the HUD")
	}
}

func TestRunTerminalSizeError(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	sizeErr := errors.New("no tty")
	calls := 0
	size := func() (int, int, error) {
		calls++
		if calls > 1 {
			return 0, 0, sizeErr
		}
		return 40, 12, nil
	}

	err := Run(context.Background(), bufio.NewReader(pr), io.Discard, Options{TermSizeFunc: size})
	if !errors.Is(err, sizeErr) {
		t.Errorf("expected terminal size error, got %v", err)
	}
}

func TestIntents(t *testing.T) {
	got := Intents(input.Input{Up: true, Left: true, Space: true, Enter: true})
	want := world.Intents{Accelerate: true, TurnLeft: true, Fire: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestEnterRespawnsShip(t *testing.T) {
	s := createTestSession(t, testConfig(2), io.Discard)
	crashShip(s.world)
	if !s.world.Status().RespawnAvailable {
		t.Fatal("expected respawn to be available")
	}

	s.handleEnter(input.Input{})
	if s.world.Ship() != nil {
		t.Fatal("expected no respawn without Enter")
	}

	s.handleEnter(input.Input{Enter: true})
	if s.world.Ship() == nil {
		t.Error("expected the ship to respawn")
	}
}

func TestEnterRestartsAfterGameOver(t *testing.T) {
	s := createTestSession(t, testConfig(1), io.Discard)
	crashShip(s.world)
	if !s.world.Status().GameOver {
		t.Fatal("expected game over")
	}

	s.handleEnter(input.Input{Enter: true})

	st := s.world.Status()
	if st.GameOver || st.Lives != 1 || s.world.Ship() == nil {
		t.Errorf("expected a new game, got %+v", st)
	}
}

func TestLogTransitions(t *testing.T) {
	var logs bytes.Buffer
	s := createTestSession(t, testConfig(1), &logs)
	crashShip(s.world)

	s.logTransitions(s.world.Status())

	for _, want := range []string{"life lost", "game over"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected %q in logs %q", want, logs.String())
		}
	}

	logs.Reset()
	s.logTransitions(s.world.Status())
	if strings.Contains(logs.String(), "game over") {
		t.Error("expected game over to be logged once")
	}
}
