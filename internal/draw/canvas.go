// Package draw renders the world to a terminal using coloured half-block cells.
package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/rohanliston/html5-asteroids/internal/geom"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ink is a registered colour as ANSI SGR parameters.
type ink struct {
	fg string
	bg string
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Drawing happens in logical (arena) coordinates and is scaled to terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []uint8 // Flat slice: [y * termWidth + x], index into inks, 0 is unset

	inks       []ink // inks[0] is unset
	inkIndex   map[colorful.Color]uint8
	background uint8 // Ink painted under every empty cell, 0 for none

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	renderBuf       strings.Builder
	scaledBuf       []geom.Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		inks:          []ink{{}},
		inkIndex:      make(map[colorful.Color]uint8),
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.rescale()
}

// SetLogicalSize changes the coordinate space drawn into.
func (c *Canvas) SetLogicalSize(width, height float64) {
	c.logicalWidth = width
	c.logicalHeight = height
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels and the background.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.background = 0
}

// Fill paints the whole canvas with clr.
func (c *Canvas) Fill(clr colorful.Color) {
	c.background = c.inkFor(clr)
}

// inkFor returns the index for clr, registering it on first use.
// Inks beyond 255 colours reuse the last slot.
func (c *Canvas) inkFor(clr colorful.Color) uint8 {
	if i, ok := c.inkIndex[clr]; ok {
		return i
	}
	if len(c.inks) > math.MaxUint8 {
		return math.MaxUint8
	}
	i := uint8(len(c.inks))
	rgb := termenv.RGBColor(clr.Hex())
	c.inks = append(c.inks, ink{fg: rgb.Sequence(false), bg: rgb.Sequence(true)})
	c.inkIndex[clr] = i
	return i
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, idx uint8) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = idx
	}
}

func (c *Canvas) toPixel(p geom.Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Set sets the pixel under a logical point.
func (c *Canvas) Set(p geom.Point, clr colorful.Color) {
	x, y := c.toPixel(p)
	c.setPixel(x, y, c.inkFor(clr))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 geom.Point, clr colorful.Color) {
	c.line(p1, p2, c.inkFor(clr))
}

func (c *Canvas) line(p1, p2 geom.Point, idx uint8) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, idx)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// StrokePolygon draws the closed outline through points. Two points draw a
// single segment.
func (c *Canvas) StrokePolygon(points []geom.Point, clr colorful.Color) {
	if len(points) < 2 {
		return
	}
	idx := c.inkFor(clr)
	n := len(points)
	if n == 2 {
		c.line(points[0], points[1], idx)
		return
	}
	for i := 0; i < n; i++ {
		c.line(points[i], points[(i+1)%n], idx)
	}
}

// FillPolygon fills the interior of the polygon using a scanline in pixel space.
func (c *Canvas) FillPolygon(points []geom.Point, clr colorful.Color) {
	if len(points) < 3 {
		return
	}
	idx := c.inkFor(clr)

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]geom.Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = geom.Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, idx)
			}
		}
	}
}

// At returns the foreground colour parameters of the ink at terminal pixel
// (x, y), or "" if nothing was drawn there.
func (c *Canvas) At(x, y int) string {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ""
	}
	return c.inks[c.pixels[y*c.termWidth+x]].fg
}

// Render outputs the canvas to w using half-block characters. Empty cells are
// skipped unless the canvas has a background.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == 0 && bottom == 0 && c.background == 0 {
				continue
			}
			c.cell(row+1, col+1, top, bottom)
		}
	}
	c.renderBuf.WriteString("\033[0m")

	io.WriteString(w, c.renderBuf.String())
}

// cell writes one terminal cell. The upper half uses the foreground colour
// and the lower half the background colour.
func (c *Canvas) cell(row, col int, top, bottom uint8) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.WriteString(strconv.Itoa(row))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(col))
	b.WriteString("H\033[0m")

	if top == 0 {
		top = c.background
	}
	if bottom == 0 {
		bottom = c.background
	}

	switch {
	case top == bottom:
		b.WriteString("\033[" + c.inks[top].fg + "m")
		b.WriteRune(BlockFull)
	case top == 0:
		b.WriteString("\033[" + c.inks[bottom].fg + "m")
		b.WriteRune(BlockLowerHalf)
	case bottom == 0:
		b.WriteString("\033[" + c.inks[top].fg + "m")
		b.WriteRune(BlockUpperHalf)
	default:
		b.WriteString("\033[" + c.inks[top].fg + ";" + c.inks[bottom].bg + "m")
		b.WriteRune(BlockUpperHalf)
	}
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(p geom.Point) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1, py/2 + 1
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
