package geom

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Point is a position in pane coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String formats the point as "(x, y)" with two decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp interpolates linearly from a to b. An alpha of 0 yields a, 1 yields b.
// Alpha is not clamped.
func Lerp(a, b Point, alpha float64) Point {
	return Point{
		X: a.X*(1-alpha) + b.X*alpha,
		Y: a.Y*(1-alpha) + b.Y*alpha,
	}
}

// Size is the extent of the drawing pane.
type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Center returns the middle of the pane.
func (s Size) Center() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Vertex is an immutable vertex identity with its position.
type Vertex struct {
	ID  int   `json:"id"`
	Pos Point `json:"pos"`
}

// NewVertices wraps points as vertices, assigning IDs 0..n-1 in input order.
func NewVertices(points []Point) []Vertex {
	vs := make([]Vertex, len(points))
	for i, p := range points {
		vs[i] = Vertex{ID: i, Pos: p}
	}
	return vs
}

// Points returns the positions of vs in order.
func Points(vs []Vertex) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = v.Pos
	}
	return out
}

// VertexDiameter is the drawing diameter of a vertex for a pane of the given
// width holding n vertices: paneWidth / (15 * ln(n+1)). Denser graphs get
// smaller circles. n below 1 is treated as 1.
func VertexDiameter(paneWidth float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	return paneWidth / (15 * math.Log(float64(n)+1))
}

// RandomPoints places n points uniformly inside pane, keeping every point at
// least half a vertex diameter away from the pane border. The diameter is
// clamped to the smaller pane side so tiny panes still produce points inside
// the pane.
func RandomPoints(rng *rand.Rand, n int, pane Size) []Point {
	d := VertexDiameter(pane.W, n)
	d = min(d, pane.W, pane.H)

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: d/2 + rng.Float64()*(pane.W-d),
			Y: d/2 + rng.Float64()*(pane.H-d),
		}
	}
	return points
}

// NewRand returns a PCG-backed generator. A zero seed is replaced by one drawn
// from the runtime's global source, so unseeded runs differ.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef)), seed
}
