package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
)

// Cell is the content of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Edge
	Partial
	Vertex
	Active
)

// Styles holds the glyph style of each non-empty cell kind.
type Styles struct {
	Edge    lipgloss.Style
	Partial lipgloss.Style
	Vertex  lipgloss.Style
	Active  lipgloss.Style
}

// DefaultStyles returns the colours of the interactive player: white edges,
// a green edge in progress and red active vertices.
func DefaultStyles() Styles {
	return Styles{
		Edge:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Partial: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Vertex:  lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
		Active:  lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
	}
}

// PlainStyles returns unstyled glyphs.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Edge: plain, Partial: plain, Vertex: plain, Active: plain}
}

var glyphs = [...]string{
	Empty:   " ",
	Edge:    "·",
	Partial: "·",
	Vertex:  "●",
	Active:  "●",
}

// Canvas is a character grid.
type Canvas struct {
	w, h  int
	cells []Cell
}

// NewCanvas returns an empty w×h canvas. Non-positive sizes give an empty
// canvas that ignores all drawing.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// At returns the cell at column x, row y. Out-of-range positions are Empty.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Empty
	}
	return c.cells[y*c.w+x]
}

// Clear resets every cell to Empty.
func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *Canvas) set(x, y int, cell Cell) {
	if c.inside(x, y) {
		c.cells[y*c.w+x] = cell
	}
}

// Draw clears the canvas and paints one frame. Vertices are looked up by ID
// for highlighting; edges carry their own endpoint positions.
func (c *Canvas) Draw(snap animator.Snapshot, vertices []geom.Vertex, pane geom.Size) {
	c.Clear()
	if c.w == 0 || c.h == 0 || pane.W <= 0 || pane.H <= 0 {
		return
	}
	m := mapping{
		sx: float64(c.w-1) / pane.W,
		sy: float64(c.h-1) / pane.H,
	}

	for _, e := range snap.Drawn {
		c.line(m.cell(e.From), m.cell(e.To), Edge)
	}
	if p := snap.Current; p != nil {
		c.line(m.cell(p.Edge.From), m.cell(p.Tip), Partial)
	}

	r := geom.VertexDiameter(pane.W, len(vertices)) / 2
	rx, ry := int(math.Round(r*m.sx)), int(math.Round(r*m.sy))
	for _, v := range vertices {
		cell := Vertex
		if snap.IsActive(v.ID) {
			cell = Active
		}
		c.disk(m.cell(v.Pos), rx, ry, cell)
	}
}

type mapping struct{ sx, sy float64 }

type point struct{ x, y int }

func (m mapping) cell(p geom.Point) point {
	return point{int(math.Round(p.X * m.sx)), int(math.Round(p.Y * m.sy))}
}

// line paints the cells between a and b inclusive using Bresenham's
// algorithm.
func (c *Canvas) line(a, b point, cell Cell) {
	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(a.x, a.y, cell)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.x += sx
		}
		if e2 <= dx {
			err += dx
			a.y += sy
		}
	}
}

// disk paints a filled ellipse with radii rx and ry around p. Zero radii
// paint the single cell p.
func (c *Canvas) disk(p point, rx, ry int, cell Cell) {
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if rx > 0 && ry > 0 && dx*dx*ry*ry+dy*dy*rx*rx > rx*rx*ry*ry {
				continue
			}
			c.set(p.x+dx, p.y+dy, cell)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Render returns the canvas as newline-separated rows. Runs of equal cells
// are styled together.
func (c *Canvas) Render(st Styles) string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			run := strings.Repeat(glyphs[row[start]], end-start)
			if style, ok := st.style(row[start]); ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = end
		}
	}
	return b.String()
}

func (st Styles) style(cell Cell) (lipgloss.Style, bool) {
	switch cell {
	case Edge:
		return st.Edge, true
	case Partial:
		return st.Partial, true
	case Vertex:
		return st.Vertex, true
	case Active:
		return st.Active, true
	}
	return lipgloss.Style{}, false
}
