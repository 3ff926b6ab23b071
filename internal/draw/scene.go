package draw

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rohanliston/html5-asteroids/internal/geom"
	"github.com/rohanliston/html5-asteroids/internal/object"
	"github.com/rohanliston/html5-asteroids/internal/shape"
	"github.com/rohanliston/html5-asteroids/internal/world"
)

// Thruster flame: a half disc behind the ship, in ship space.
const (
	thrusterOffset   = -10.0
	thrusterRadius   = 4.0
	thrusterSegments = 8
)

// Scene draws world state onto a canvas.
type Scene struct {
	shapes  *shape.Set
	outline []geom.Point
}

// NewScene returns a scene using the given shape table.
func NewScene(shapes *shape.Set) *Scene {
	return &Scene{shapes: shapes}
}

// Draw clears the canvas and paints the world. On a flash tick the whole
// canvas is filled with the flash colour and nothing else is drawn.
func (s *Scene) Draw(c *Canvas, w *world.World) {
	c.Clear()
	arena := w.Arena()
	c.SetLogicalSize(arena.Width, arena.Height)

	if w.Flash() {
		if rgb, ok := s.shapes.RGB(s.shapes.Flash); ok {
			c.Fill(rgb)
		}
		return
	}

	if ship := w.Ship(); ship != nil {
		s.entity(c, &ship.Entity)
		if ship.Accelerating {
			s.thruster(c, ship)
		}
	}
	for _, m := range w.Missiles() {
		s.entity(c, &m.Entity)
	}
	for _, a := range w.Asteroids() {
		if a.Broken {
			continue
		}
		s.entity(c, &a.Entity)
	}
	for _, d := range w.Debris() {
		s.entity(c, &d.Entity)
	}
}

// entity fills then strokes the entity outline. Black fills are skipped
// since they match the terminal background.
func (s *Scene) entity(c *Canvas, e *object.Entity) {
	s.outline = e.Outline(s.outline)
	if fill, ok := s.shapes.RGB(e.Fill); ok && fill != (colorful.Color{}) {
		c.FillPolygon(s.outline, fill)
	}
	if stroke, ok := s.shapes.RGB(e.Stroke); ok {
		c.StrokePolygon(s.outline, stroke)
	}
}

func (s *Scene) thruster(c *Canvas, ship *object.Ship) {
	rgb, ok := s.shapes.RGB(s.shapes.Thruster)
	if !ok {
		return
	}
	s.outline = thrusterOutline(ship, s.outline)
	c.StrokePolygon(s.outline, rgb)
}

// thrusterOutline returns the flame polygon in world space: an arc from
// straight down to straight up around the back of the ship.
func thrusterOutline(ship *object.Ship, dst []geom.Point) []geom.Point {
	dst = dst[:0]
	centre := geom.Point{X: thrusterOffset}
	for i := 0; i <= thrusterSegments; i++ {
		angle := math.Pi/2 + math.Pi*float64(i)/thrusterSegments
		p := centre.Add(geom.FromAngle(angle, thrusterRadius))
		dst = append(dst, p.Rotate(ship.Rotation).Add(ship.Location))
	}
	return dst
}
