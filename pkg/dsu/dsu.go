package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVertex is returned when an operation names a vertex that was
	// never registered with [DisjointSet.MakeSet], or a negative index.
	ErrInvalidVertex = errors.New("invalid vertex")

	// ErrDuplicateVertex is returned by [DisjointSet.MakeSet] when the vertex
	// is already registered.
	ErrDuplicateVertex = errors.New("vertex already registered")
)

// DisjointSet is a union-find forest over non-negative integer indices.
//
// The zero value is an empty, usable forest.
type DisjointSet struct {
	parent     []int
	height     []int
	registered []bool
	size       int // registered vertices
	sets       int // disjoint sets
}

// New returns an empty forest with room for capacity vertices.
func New(capacity int) *DisjointSet {
	capacity = max(capacity, 0)
	return &DisjointSet{
		parent:     make([]int, 0, capacity),
		height:     make([]int, 0, capacity),
		registered: make([]bool, 0, capacity),
	}
}

// MakeSet registers v as a singleton set of height 1.
func (d *DisjointSet) MakeSet(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	if v < len(d.registered) && d.registered[v] {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
	}
	for len(d.parent) <= v {
		d.parent = append(d.parent, len(d.parent))
		d.height = append(d.height, 0)
		d.registered = append(d.registered, false)
	}
	d.parent[v] = v
	d.height[v] = 1
	d.registered[v] = true
	d.size++
	d.sets++
	return nil
}

// Find returns the representative of the set containing v. Every node on the
// path from v to the root is re-pointed at the root.
func (d *DisjointSet) Find(v int) (int, error) {
	if !d.has(v) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for v != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}
	return root, nil
}

// Union merges the sets containing a and b and reports whether they were
// separate. When both trees have the same height, b's root is attached under
// a's root and a's root grows by one.
func (d *DisjointSet) Union(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	switch ha, hb := d.height[ra], d.height[rb]; {
	case ha < hb:
		d.parent[ra] = rb
	case ha > hb:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.height[ra]++
	}
	d.sets--
	return true, nil
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Height returns the height recorded for the root of v's tree. It does not
// compress.
func (d *DisjointSet) Height(v int) (int, error) {
	if !d.has(v) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	for d.parent[v] != v {
		v = d.parent[v]
	}
	return d.height[v], nil
}

// Depth returns the number of parent links between v and its root without
// compressing the path. A root has depth 0.
func (d *DisjointSet) Depth(v int) (int, error) {
	if !d.has(v) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	depth := 0
	for d.parent[v] != v {
		v = d.parent[v]
		depth++
	}
	return depth, nil
}

// Len returns the number of registered vertices.
func (d *DisjointSet) Len() int { return d.size }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.sets }

func (d *DisjointSet) has(v int) bool {
	return v >= 0 && v < len(d.registered) && d.registered[v]
}
