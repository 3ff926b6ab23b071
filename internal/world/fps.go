package world

import "time"

// fpsFilter is the smoothing factor of the frame rate average.
const fpsFilter = 50

func (w *World) updateFPS(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	w.fps += (1000/ms - w.fps) / fpsFilter
}
