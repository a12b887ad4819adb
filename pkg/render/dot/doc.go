// Package dot renders animation frames as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] turns an [animator.Snapshot] and its vertex set into DOT source for
// the neato engine. Vertex positions are pinned (pos="x,y!"), so Graphviz
// does no layout of its own and the picture matches the pane exactly.
//
// # Usage
//
//	src := dot.ToDOT(snap, vertices, dot.Options{Pane: pane})
//	svg, err := dot.RenderSVG(ctx, src)
//	png, err := dot.RenderPNG(ctx, src)
//
// # Frame Elements
//
//   - Vertices: filled black circles sized like the terminal view
//   - Drawn edges: black lines
//   - Edge in progress: a green line from its first endpoint to an
//     invisible tip node at the interpolated position
//   - Endpoints of the edge in progress: red
//
// Two invisible anchor nodes pin the pane corners so every frame of a run
// has the same canvas size.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process; no external binaries are needed.
package dot
