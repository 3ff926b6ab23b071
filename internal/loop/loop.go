// Package loop drives one terminal game session: Input → Tick → Draw, once
// per frame.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/draw"
	"github.com/rohanliston/html5-asteroids/internal/input"
	"github.com/rohanliston/html5-asteroids/internal/shape"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

// Options configures a session.
type Options struct {
	Config       *config.Config
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
}

// session holds everything one running game owns.
type session struct {
	world  *world.World
	stream *input.Stream
	canvas *draw.Canvas
	scene  *draw.Scene
	hud    *draw.HUD
	out    *draw.ChunkWriter
	size   draw.TermSizeFunc
	logger *log.Logger
	status world.Status // As of the end of the previous frame

	frameTime time.Duration
}

// Run plays a game reading keys from r and drawing to w until the player
// quits, r ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s := newSession(ctx, r, w, opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	s.logger.Info("game started", "asteroids", len(s.world.Asteroids()), "lives", s.status.Lives)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		elapsed := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(s.stream)
		if in.Quit {
			break
		}
		s.handleEnter(in)

		// ===== UPDATE PHASE =====
		s.world.Tick(elapsed, Intents(in))
		s.logTransitions(s.world.Status())

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := s.frameTime - time.Since(frameStart)
		select {
		case <-ctx.Done():
			s.logger.Info("game stopped", "reason", ctx.Err(), "score", s.status.Score)
			draw.ClearScreen(w)
			return nil
		case <-time.After(max(wait, 0)):
		}
	}

	s.logger.Info("game ended", "score", s.status.Score, "lives", s.status.Lives)
	draw.ClearScreen(w)
	return nil
}

func newSession(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) *session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	size := opts.TermSizeFunc
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}

	shapes := shape.Default()
	wld := world.New(cfg)
	wld.Initialize()

	cols, rows, err := size()
	if err != nil {
		cols, rows = 80, 24
	}

	return &session{
		world:  wld,
		stream: input.StartStream(ctx, r),
		canvas: draw.NewScaledCanvas(cols, rows, cfg.Arena.Width, cfg.Arena.Height),
		scene:  draw.NewScene(shapes),
		hud:    draw.NewHUD(w, shapes),
		out:    draw.NewChunkWriter(w),
		size:   size,
		logger: logger,
		status: wld.Status(),

		frameTime: cfg.Frame.FrameTime(),
	}
}

// Intents maps held keys onto ship controls.
func Intents(in input.Input) world.Intents {
	return world.Intents{
		Accelerate: in.Up,
		TurnLeft:   in.Left,
		TurnRight:  in.Right,
		Fire:       in.Space,
	}
}

// handleEnter restarts a finished game or respawns the ship.
func (s *session) handleEnter(in input.Input) {
	if !in.Enter {
		return
	}
	st := s.world.Status()
	switch {
	case st.GameOver || st.GameWon:
		s.world.Initialize()
		s.status = s.world.Status()
		s.logger.Info("new game", "lives", s.status.Lives)
	case st.RespawnAvailable:
		s.world.SpawnPlayer()
		s.status = s.world.Status()
		s.logger.Debug("ship respawned", "lives", s.status.Lives)
	}
}

// logTransitions logs what changed since the previous frame and remembers st.
func (s *session) logTransitions(st world.Status) {
	prev := s.status
	s.status = st

	if st.Lives < prev.Lives {
		s.logger.Info("life lost", "lives", st.Lives, "score", st.Score)
	}
	if st.GameOver && !prev.GameOver {
		s.logger.Info("game over", "score", st.Score)
	}
	if st.GameWon && !prev.GameWon {
		s.logger.Info("game won", "score", st.Score, "lives", st.Lives)
	}
	if st.Score > prev.Score {
		s.logger.Debug("score", "score", st.Score)
	}
}

// drawFrame resizes the canvas to the terminal and renders the world and HUD.
func (s *session) drawFrame() error {
	cols, rows, err := s.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	s.canvas.Resize(cols, rows)

	draw.ClearScreen(s.out)
	s.scene.Draw(s.canvas, s.world)
	s.canvas.Render(s.out)
	s.hud.Draw(s.out, s.status, s.canvas.TerminalWidth(), s.canvas.TerminalHeight())

	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
