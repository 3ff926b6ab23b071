// Package shape holds the outlines and colours entities are built and drawn with.
// The table is compiled in from shapes.yaml.
package shape

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/rohanliston/html5-asteroids/internal/geom"
)

// Color is a palette entry name, e.g. "green".
type Color string

// Transparent is never painted.
const Transparent Color = "transparent"

// Shape is the local-space outline of an entity kind and its bounding box extents.
type Shape struct {
	Stroke Color
	Fill   Color
	Width  float64
	Height float64
	Points []geom.Point
}

// Set is a decoded shape table.
type Set struct {
	Ship     Shape
	Asteroid Shape
	Missile  Shape

	AsteroidDebris Color
	ShipDebris     Color
	Thruster       Color
	Flash          Color

	palette map[Color]colorful.Color
}

//go:embed shapes.yaml
var defaultData []byte

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the compiled-in shape table.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := Parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("shape: embedded table: %v", err))
		}
		defaultSet = s
	})
	return defaultSet
}

type pointEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type shapeEntry struct {
	Stroke string `yaml:"stroke"`
	Fill   string `yaml:"fill"`
	Box    struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"box"`
	Points []pointEntry `yaml:"points"`
}

type tableFile struct {
	Palette  map[string]string `yaml:"palette"`
	Flash    string            `yaml:"flash"`
	Thruster string            `yaml:"thruster"`
	Ship     shapeEntry        `yaml:"ship"`
	Asteroid shapeEntry        `yaml:"asteroid"`
	Missile  shapeEntry        `yaml:"missile"`
	Debris   struct {
		Asteroid string `yaml:"asteroid"`
		Ship     string `yaml:"ship"`
	} `yaml:"debris"`
}

// Parse decodes a shape table from YAML and checks every colour it references.
func Parse(data []byte) (*Set, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("shape: parse: %w", err)
	}

	s := &Set{palette: make(map[Color]colorful.Color, len(f.Palette))}
	for name, hex := range f.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("shape: palette %q: %w", name, err)
		}
		s.palette[Color(name)] = c
	}

	var err error
	if s.Ship, err = s.build("ship", f.Ship); err != nil {
		return nil, err
	}
	if s.Asteroid, err = s.build("asteroid", f.Asteroid); err != nil {
		return nil, err
	}
	if s.Missile, err = s.build("missile", f.Missile); err != nil {
		return nil, err
	}

	colors := []struct {
		field string
		value string
		dst   *Color
	}{
		{"flash", f.Flash, &s.Flash},
		{"thruster", f.Thruster, &s.Thruster},
		{"debris.asteroid", f.Debris.Asteroid, &s.AsteroidDebris},
		{"debris.ship", f.Debris.Ship, &s.ShipDebris},
	}
	for _, c := range colors {
		if *c.dst, err = s.color(c.field, c.value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) build(name string, e shapeEntry) (Shape, error) {
	if len(e.Points) < 2 {
		return Shape{}, fmt.Errorf("shape: %s: need at least 2 points, got %d", name, len(e.Points))
	}
	if e.Box.Width <= 0 || e.Box.Height <= 0 {
		return Shape{}, fmt.Errorf("shape: %s: bounding box must be positive", name)
	}
	stroke, err := s.color(name+".stroke", e.Stroke)
	if err != nil {
		return Shape{}, err
	}
	fill, err := s.color(name+".fill", e.Fill)
	if err != nil {
		return Shape{}, err
	}

	points := make([]geom.Point, len(e.Points))
	for i, p := range e.Points {
		points[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return Shape{
		Stroke: stroke,
		Fill:   fill,
		Width:  e.Box.Width,
		Height: e.Box.Height,
		Points: points,
	}, nil
}

var errUnknownColor = errors.New("unknown colour")

func (s *Set) color(field, name string) (Color, error) {
	c := Color(name)
	if c == Transparent {
		return c, nil
	}
	if _, ok := s.palette[c]; !ok {
		return "", fmt.Errorf("shape: %s: %w %q", field, errUnknownColor, name)
	}
	return c, nil
}

// RGB resolves a colour name. ok is false for Transparent and unknown names.
func (s *Set) RGB(c Color) (rgb colorful.Color, ok bool) {
	rgb, ok = s.palette[c]
	return rgb, ok
}

// Clone returns a copy of the outline so an entity may own it.
func (sh Shape) Clone() []geom.Point {
	return append([]geom.Point(nil), sh.Points...)
}
