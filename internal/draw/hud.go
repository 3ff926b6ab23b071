package draw

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rohanliston/html5-asteroids/internal/shape"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

// HUD messages.
const (
	RespawnText  = "Press ENTER to respawn"
	GameOverText = "GAME OVER - press ENTER to play again"
	GameWonText  = "YOU WIN! - press ENTER to play again"
	ControlsText = "W/Up thrust  A/D turn  SPACE fire  Q quit"
)

// HUD renders the score, lives, frame rate and state messages as text
// overlays on top of the canvas.
type HUD struct {
	label   lipgloss.Style
	message lipgloss.Style
}

// NewHUD builds the HUD styles for output going to w. The colour profile is
// forced to true colour since SSH sessions do not expose the client's.
func NewHUD(w io.Writer, shapes *shape.Set) *HUD {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	label := r.NewStyle()
	if rgb, ok := shapes.RGB(shapes.Ship.Stroke); ok {
		label = label.Foreground(lipgloss.Color(rgb.Hex()))
	}
	message := label.Bold(true)
	if rgb, ok := shapes.RGB(shapes.Thruster); ok {
		message = message.Foreground(lipgloss.Color(rgb.Hex()))
	}

	return &HUD{label: label, message: message}
}

// Draw writes the overlays for st into cw. cols and rows are the terminal size.
func (h *HUD) Draw(cw *ChunkWriter, st world.Status, cols, rows int) {
	cw.WriteAt(2, 1, h.label.Render(ScoreText(st.Score)))
	cw.WriteAt(2, 2, h.label.Render(LivesText(st.Lives)))

	fps := FPSText(st.FPS)
	cw.WriteAt(max(cols-len(fps), 1), 1, h.label.Render(fps))

	if rows > 3 && cols > len(ControlsText) {
		cw.WriteAt(2, rows, h.label.Render(ControlsText))
	}

	if msg := MessageText(st); msg != "" {
		col := max((cols-len(msg))/2+1, 1)
		cw.WriteAt(col, max(rows/2, 1), h.message.Render(msg))
	}
}

// ScoreText formats the score label.
func ScoreText(score int) string { return fmt.Sprintf("SCORE: %d", score) }

// LivesText formats the lives label.
func LivesText(lives int) string { return fmt.Sprintf("LIVES: %d", lives) }

// FPSText formats the frame rate label.
func FPSText(fps float64) string { return fmt.Sprintf("FPS: %.1f", fps) }

// MessageText returns the centred message for the session state, if any.
func MessageText(st world.Status) string {
	switch {
	case st.GameOver:
		return GameOverText
	case st.GameWon:
		return GameWonText
	case st.RespawnAvailable:
		return RespawnText
	}
	return ""
}
