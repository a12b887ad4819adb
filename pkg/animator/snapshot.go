package animator

import (
	"slices"

	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
)

// Snapshot is the draw state of one frame.
type Snapshot struct {
	State  State
	Cursor int // number of fully drawn edges
	Total  int // number of edges in the animation

	// Drawn holds edges [0, Cursor). It shares the animator's backing array
	// and must not be modified.
	Drawn []kruskal.Edge

	// Current is the edge being drawn, nil when Idle or Complete.
	Current *Progress

	// Active holds the endpoints of Current for highlighting, nil when no
	// edge is in progress.
	Active []int
}

// Progress describes the partially drawn edge.
type Progress struct {
	Edge  kruskal.Edge
	Alpha float64    // fraction drawn, in [0, 1)
	Tip   geom.Point // Lerp(Edge.From, Edge.To, Alpha)
}

// IsActive reports whether vertex id is an endpoint of the edge in progress.
func (s Snapshot) IsActive(id int) bool {
	return slices.Contains(s.Active, id)
}

// Fraction returns overall progress in [0, 1], counting the partial edge.
// An empty animation reports 1.
func (s Snapshot) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	done := float64(s.Cursor)
	if s.Current != nil {
		done += s.Current.Alpha
	}
	return done / float64(s.Total)
}

// DrawnWeight sums the weights of the fully drawn edges.
func (s Snapshot) DrawnWeight() float64 {
	total := 0.0
	for _, e := range s.Drawn {
		total += e.Weight
	}
	return total
}
