// Package kruskal selects the minimum spanning tree of the complete Euclidean
// graph over a vertex set, recording edges in the order Kruskal's algorithm
// accepts them.
//
// # Algorithm
//
// [CompleteEdges] generates every unordered pair (i, j) with i < j in nested
// ascending order, weights it by Euclidean distance and sorts ascending with a
// stable sort, so equal weights keep generation order. [ComputeMST] walks that
// candidate list and keeps an edge whenever its endpoints lie in different
// components of a [dsu.DisjointSet]; an edge joining one component to itself
// would close a cycle and is discarded.
//
// Correctness follows from the cut property: the lightest edge crossing any
// cut belongs to some MST. Because the graph is complete, the walk always
// collects exactly n-1 edges.
//
// # Ordering
//
// [Result.Edges] is the playback order used by package animator. Candidates
// are non-decreasing in weight, and so are accepted edges, but a run of
// accepted edges may be interleaved with rejected ones.
//
// # Complexity
//
// O(V² log V) time and O(V²) memory, dominated by sorting the V(V-1)/2
// candidates.
package kruskal
