// Package dsu implements a disjoint-set forest (union-find) over integer
// vertex indices.
//
// The forest is index-based: parent and height live in flat slices indexed by
// vertex, so a root is simply an index whose parent is itself. Two heuristics
// keep trees shallow:
//
//   - Path compression: [DisjointSet.Find] re-points every node it visits
//     directly at the root.
//   - Union by height: [DisjointSet.Union] hangs the shorter tree under the
//     taller one. On a tie the second argument's root goes under the first
//     argument's root, whose height grows by exactly one.
//
// Together they bound tree height by O(log n) and make Find amortized near
// O(1).
//
// # Usage
//
//	s := dsu.New(4)
//	for v := range 4 {
//	    _ = s.MakeSet(v)
//	}
//	merged, _ := s.Union(0, 1) // true
//	merged, _ = s.Union(1, 0)  // false, already one set
//
// # Concurrency
//
// A DisjointSet is not safe for concurrent use. Even Find mutates the forest.
package dsu
