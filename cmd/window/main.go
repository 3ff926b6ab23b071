package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rohanliston/html5-asteroids/internal/config"
	"github.com/rohanliston/html5-asteroids/internal/logging"
	"github.com/rohanliston/html5-asteroids/internal/window"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Frame.TargetFPS)

	logger.Info("window started", "width", cfg.Arena.Width, "height", cfg.Arena.Height)
	if err := ebiten.RunGame(window.NewGame(cfg, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
