package dsu

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDisjointSetProperties checks forest invariants over random union
// sequences.
func TestDisjointSetProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const n = 32
	pairs := gen.SliceOf(gen.IntRange(0, n*n-1))

	apply := func(ops []int) *DisjointSet {
		d := New(n)
		for v := range n {
			_ = d.MakeSet(v)
		}
		for _, op := range ops {
			_, _ = d.Union(op/n, op%n)
		}
		return d
	}

	properties.Property("find is idempotent and never lengthens paths", prop.ForAll(
		func(ops []int, probe int) bool {
			d := apply(ops)
			before, _ := d.Depth(probe)
			r1, err := d.Find(probe)
			if err != nil {
				return false
			}
			mid, _ := d.Depth(probe)
			r2, _ := d.Find(probe)
			after, _ := d.Depth(probe)
			return r1 == r2 && mid <= before && after <= mid
		},
		pairs,
		gen.IntRange(0, n-1),
	))

	properties.Property("every root points to itself", prop.ForAll(
		func(ops []int) bool {
			d := apply(ops)
			for v := range n {
				root, err := d.Find(v)
				if err != nil || d.parent[root] != root {
					return false
				}
			}
			return true
		},
		pairs,
	))

	properties.Property("count equals number of distinct roots", prop.ForAll(
		func(ops []int) bool {
			d := apply(ops)
			roots := map[int]bool{}
			for v := range n {
				root, _ := d.Find(v)
				roots[root] = true
			}
			return len(roots) == d.Count()
		},
		pairs,
	))

	properties.Property("height stays logarithmic", prop.ForAll(
		func(ops []int) bool {
			d := apply(ops)
			// A tree of height h holds at least 2^(h-1) vertices.
			sizes := map[int]int{}
			for v := range n {
				root, _ := d.Find(v)
				sizes[root]++
			}
			for root, size := range sizes {
				if 1<<(d.height[root]-1) > size {
					return false
				}
			}
			return true
		},
		pairs,
	))

	properties.TestingRun(t)
}
