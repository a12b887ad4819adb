package kruskal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/derian-c/MATH478-FinalProject/pkg/dsu"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
)

var (
	// ErrInsufficientVertices is returned by [ComputeMST] when the vertex set
	// is empty.
	ErrInsufficientVertices = errors.New("at least one vertex is required")

	// ErrDuplicateVertex is returned by [ComputeMST] when two vertices share
	// an ID.
	ErrDuplicateVertex = errors.New("duplicate vertex ID")

	// ErrNonFinitePosition is returned by [ComputeMST] when a vertex has a NaN
	// or infinite coordinate, which would make weights unordered.
	ErrNonFinitePosition = errors.New("vertex position is not finite")
)

// Edge is an undirected, weighted edge of the complete graph. U is the
// endpoint generated first; From and To are the positions of U and V.
type Edge struct {
	U      int        `json:"u"`
	V      int        `json:"v"`
	From   geom.Point `json:"from"`
	To     geom.Point `json:"to"`
	Weight float64    `json:"weight"`
}

// String formats the edge as "u-v (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d (%.2f)", e.U, e.V, e.Weight)
}

// Result is the outcome of one Kruskal run.
type Result struct {
	// Edges holds the accepted edges in acceptance order.
	Edges []Edge `json:"edges"`
	// TotalWeight is the sum of the accepted edge weights.
	TotalWeight float64 `json:"total_weight"`
	// Considered counts candidates examined before the tree was complete.
	Considered int `json:"considered"`
	// Rejected counts candidates discarded because they would close a cycle.
	Rejected int `json:"rejected"`
}

// CompleteEdges returns every pair of vertices as an edge, sorted by ascending
// weight. Ties keep the (i, j) generation order.
func CompleteEdges(vertices []geom.Vertex) []Edge {
	n := len(vertices)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := vertices[i], vertices[j]
			edges = append(edges, Edge{
				U:      a.ID,
				V:      b.ID,
				From:   a.Pos,
				To:     b.Pos,
				Weight: geom.Distance(a.Pos, b.Pos),
			})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
	return edges
}

// ComputeMST runs Kruskal's algorithm over the complete graph on vertices.
// A single vertex yields an empty, already complete tree.
func ComputeMST(vertices []geom.Vertex) (*Result, error) {
	n := len(vertices)
	if n < 1 {
		return nil, ErrInsufficientVertices
	}

	// The forest is indexed by position in vertices, not by ID.
	index := make(map[int]int, n)
	forest := dsu.New(n)
	for i, v := range vertices {
		if _, dup := index[v.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v.ID)
		}
		if !v.Pos.IsFinite() {
			return nil, fmt.Errorf("%w: vertex %d at %v", ErrNonFinitePosition, v.ID, v.Pos)
		}
		index[v.ID] = i
		if err := forest.MakeSet(i); err != nil {
			return nil, fmt.Errorf("register vertex %d: %w", v.ID, err)
		}
	}

	res := &Result{Edges: make([]Edge, 0, n-1)}
	if n == 1 {
		return res, nil
	}

	for _, e := range CompleteEdges(vertices) {
		res.Considered++
		merged, err := forest.Union(index[e.U], index[e.V])
		if err != nil {
			return nil, fmt.Errorf("union %d-%d: %w", e.U, e.V, err)
		}
		if !merged {
			res.Rejected++
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}
	return res, nil
}
