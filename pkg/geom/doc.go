// Package geom holds the vertex set a Kruskal run is computed over.
//
// A vertex is an integer identity plus a position in pane coordinates (origin
// top-left, y growing downward, the same convention a screen uses). Vertex
// sets come from one of two sources:
//
//   - [RandomPoints]: uniform placement inside a pane, padded by half a
//     vertex diameter so circles of [VertexDiameter] stay on screen
//   - an external loader (see package pointfile) producing already
//     normalized coordinates
//
// [NewVertices] assigns identities 0..n-1 in input order. Those identities
// double as indices into the flat arrays of package dsu.
//
// # Concurrency
//
// All types are plain values. Functions are safe for concurrent use as long as
// the *rand.Rand passed to [RandomPoints] is not shared.
package geom
