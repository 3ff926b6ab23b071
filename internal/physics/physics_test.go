package physics

import (
	"testing"

	"github.com/rohanliston/html5-asteroids/internal/geom"
)

type box geom.Rect

func (b box) Bounds() geom.Rect { return geom.Rect(b) }

func TestCollidingAbsent(t *testing.T) {
	a := box(geom.NewRect(0, 0, 10, 10))
	if Colliding(a, nil) {
		t.Error("collision with absent object should be false")
	}
	if Colliding(nil, a) {
		t.Error("collision from absent object should be false")
	}
}

func TestCollidingSymmetric(t *testing.T) {
	boxes := []box{
		box(geom.NewRect(0, 0, 10, 10)),
		box(geom.NewRect(10, 10, 4, 4)),
		box(geom.NewRect(5, -3, 2, 30)),
		box(geom.NewRect(100, 100, 30, 30)),
		box(geom.NewRect(-20, 0, 20, 1)),
		box(geom.NewRect(3, 3, 0, 0)),
	}
	for i, a := range boxes {
		for j, b := range boxes {
			if Colliding(a, b) != Colliding(b, a) {
				t.Errorf("asymmetric result for pair %d,%d", i, j)
			}
		}
	}
}

func TestCollidingEdges(t *testing.T) {
	a := box(geom.NewRect(0, 0, 30, 30))
	touching := box(geom.NewRect(30, 0, 4, 4))
	apart := box(geom.NewRect(30.5, 0, 4, 4))

	if !Colliding(a, touching) {
		t.Error("boxes sharing an edge should collide")
	}
	if Colliding(a, apart) {
		t.Error("separated boxes should not collide")
	}
}
