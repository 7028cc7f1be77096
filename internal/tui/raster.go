package tui

import (
	"math"
	"strings"

	"github.com/iburimskiy/circle-numbers/internal/circle"
)

// Virtual pixels per terminal cell. Cells are roughly twice as tall as
// they are wide.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	chordRune  = '*'
	circleRune = 'o'
)

type grid struct {
	cols, rows int
	cells      [][]rune
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	if g.cells[y][x] == circleRune && r == chordRune {
		return
	}
	g.cells[y][x] = r
}

func cell(p circle.Point) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// StrokeCircle samples the outline densely enough to touch every cell.
func (g *grid) StrokeCircle(c circle.Point, r float64) {
	n := max(int(2*math.Pi*r/cellWidth)*2, 8)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := cell(circle.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
		g.set(x, y, circleRune)
	}
}

// StrokeLine walks the cells between the endpoints with Bresenham's
// algorithm.
func (g *grid) StrokeLine(from, to circle.Point, _ int) {
	x0, y0 := cell(from)
	x1, y1 := cell(to)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.set(x0, y0, chordRune)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (g *grid) lines() []string {
	out := make([]string, g.rows)
	for y, row := range g.cells {
		out[y] = string(row)
	}
	return out
}

// Raster projects p onto a cols x rows character canvas.
func Raster(p circle.Params, cols, rows int) []string {
	g := newGrid(cols, rows)
	cs := circle.Project(p.Multiplier, p.Modulus, float64(cols)*cellWidth, float64(rows)*cellHeight)
	if cs.Radius > 0 {
		cs.Draw(g)
	}
	return g.lines()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
