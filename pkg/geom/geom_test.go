package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
	assert.InDelta(t, 10*math.Sqrt2, Distance(Point{0, 0}, Point{10, 10}), 1e-12)
	assert.Zero(t, Distance(Point{7, 7}, Point{7, 7}))
}

func TestLerp(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 20}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Point{5, 10}, Lerp(a, b, 0.5))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Point{1, 2}.IsFinite())
	assert.False(t, Point{math.NaN(), 2}.IsFinite())
	assert.False(t, Point{1, math.Inf(-1)}.IsFinite())
}

func TestNewVertices(t *testing.T) {
	vs := NewVertices([]Point{{1, 1}, {2, 2}, {3, 3}})
	require.Len(t, vs, 3)
	for i, v := range vs {
		assert.Equal(t, i, v.ID)
	}
	assert.Equal(t, []Point{{1, 1}, {2, 2}, {3, 3}}, Points(vs))
}

func TestVertexDiameter(t *testing.T) {
	got := VertexDiameter(1500, 9)
	assert.InDelta(t, 1500/(15*math.Log(10)), got, 1e-9)

	// Denser graphs shrink vertices.
	assert.Less(t, VertexDiameter(1500, 100), VertexDiameter(1500, 10))
	assert.Equal(t, VertexDiameter(1500, 1), VertexDiameter(1500, 0))
}

func TestRandomPointsStayInPane(t *testing.T) {
	pane := Size{W: 800, H: 600}
	for _, n := range []int{1, 2, 10, 250} {
		rng := rand.New(rand.NewPCG(7, 11))
		points := RandomPoints(rng, n, pane)
		require.Len(t, points, n)

		d := min(VertexDiameter(pane.W, n), pane.W, pane.H)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.X, d/2)
			assert.LessOrEqual(t, p.X, pane.W-d/2)
			assert.GreaterOrEqual(t, p.Y, d/2)
			assert.LessOrEqual(t, p.Y, pane.H-d/2)
		}
	}
}

func TestRandomPointsTinyPane(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, p := range RandomPoints(rng, 3, Size{W: 10, H: 4}) {
		assert.True(t, p.X >= 0 && p.X <= 10, "x out of pane: %v", p)
		assert.True(t, p.Y >= 0 && p.Y <= 4, "y out of pane: %v", p)
	}
}

func TestNewRandSeeded(t *testing.T) {
	r1, s1 := NewRand(42)
	r2, s2 := NewRand(42)
	assert.Equal(t, uint64(42), s1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1.Float64(), r2.Float64())

	_, s3 := NewRand(0)
	assert.NotZero(t, s3)
}
