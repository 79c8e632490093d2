package adapter

import (
	"fmt"
	"math"
	"strings"

	m "github.com/mouse-blink/watchman/internal/model"
)

// Plot glyphs.
const (
	glyphEmpty  = ' '
	glyphAxisX  = '-'
	glyphAxisY  = '|'
	glyphOrigin = '+'
	glyphRoute  = '*'
	glyphTurn   = 'o'
)

// lineGlyphs label lines in input order; the sequence wraps after 36 lines.
const lineGlyphs = "123456789abcdefghijklmnopqrstuvwxyz0"

// Plotter renders lines and an optional route onto a text canvas.
type Plotter interface {
	Plot(lines m.LineSet, route *m.Route) string
}

type asciiPlotter struct {
	cfg PlotConfig
}

// NewPlotter constructs a Plotter for the window and canvas size in cfg.
func NewPlotter(cfg PlotConfig) Plotter {
	return &asciiPlotter{cfg: cfg}
}

type canvas struct {
	cfg   PlotConfig
	cells [][]rune
}

func newCanvas(cfg PlotConfig) *canvas {
	cells := make([][]rune, cfg.Height)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(string(glyphEmpty), cfg.Width))
	}

	return &canvas{cfg: cfg, cells: cells}
}

// toCell maps plane coordinates to a canvas cell; ok is false outside the window.
func (c *canvas) toCell(p m.Point) (row, col int, ok bool) {
	fx := (p.X - c.cfg.XMin) / (c.cfg.XMax - c.cfg.XMin) * float64(c.cfg.Width-1)
	fy := (c.cfg.YMax - p.Y) / (c.cfg.YMax - c.cfg.YMin) * float64(c.cfg.Height-1)

	col, row = int(math.Round(fx)), int(math.Round(fy))
	if col < 0 || col >= c.cfg.Width || row < 0 || row >= c.cfg.Height {
		return 0, 0, false
	}

	return row, col, true
}

func (c *canvas) set(p m.Point, g rune) {
	if row, col, ok := c.toCell(p); ok {
		c.cells[row][col] = g
	}
}

func (c *canvas) drawAxes() {
	for col := 0; col < c.cfg.Width; col++ {
		x := c.cfg.XMin + float64(col)/float64(c.cfg.Width-1)*(c.cfg.XMax-c.cfg.XMin)
		c.set(m.Point{X: x, Y: 0}, glyphAxisX)
	}

	for row := 0; row < c.cfg.Height; row++ {
		y := c.cfg.YMax - float64(row)/float64(c.cfg.Height-1)*(c.cfg.YMax-c.cfg.YMin)
		c.set(m.Point{X: 0, Y: y}, glyphAxisY)
	}

	c.set(m.Point{}, glyphOrigin)
}

// drawLine samples the line once per column and, for non-flat lines, once
// per row so steep lines stay connected.
func (c *canvas) drawLine(l m.Line, g rune) {
	for col := 0; col < c.cfg.Width; col++ {
		x := c.cfg.XMin + float64(col)/float64(c.cfg.Width-1)*(c.cfg.XMax-c.cfg.XMin)
		c.set(m.Point{X: x, Y: l.At(x)}, g)
	}

	if l.Slope == 0 {
		return
	}

	for row := 0; row < c.cfg.Height; row++ {
		y := c.cfg.YMax - float64(row)/float64(c.cfg.Height-1)*(c.cfg.YMax-c.cfg.YMin)
		c.set(m.Point{X: (y - l.Intercept) / l.Slope, Y: y}, g)
	}
}

func (c *canvas) drawSegment(a, b m.Point) {
	steps := 2 * (c.cfg.Width + c.cfg.Height)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.set(m.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, glyphRoute)
	}
}

func (c *canvas) String() string {
	var b strings.Builder

	for _, row := range c.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// Plot draws axes, every line (labelled by glyph) and the route on top,
// followed by a legend.
func (p *asciiPlotter) Plot(lines m.LineSet, route *m.Route) string {
	c := newCanvas(p.cfg)
	c.drawAxes()

	for i, l := range lines {
		c.drawLine(l, rune(lineGlyphs[i%len(lineGlyphs)]))
	}

	if route != nil {
		for i := 1; i < len(route.Points); i++ {
			c.drawSegment(route.Points[i-1], route.Points[i])
		}

		for _, pt := range route.Points {
			c.set(pt, glyphTurn)
		}
	}

	var legend strings.Builder

	for i, l := range lines {
		fmt.Fprintf(&legend, "%c  %s\n", lineGlyphs[i%len(lineGlyphs)], l)
	}

	if route != nil {
		fmt.Fprintf(&legend, "%c  watchman route (%d links)\n", glyphTurn, route.Links)
	}

	return c.String() + "\n" + legend.String()
}
