// Package pkg provides the core libraries for kruskalviz, an animated view of
// Kruskal's minimum spanning tree algorithm.
//
// # Overview
//
// Kruskalviz places points in a pane, treats them as the vertices of a
// complete Euclidean graph, selects the minimum spanning tree with Kruskal's
// algorithm and replays the accepted edges one frame at a time. The pkg
// directory is organized into three areas:
//
//  1. Core: [geom], [dsu], [kruskal], [animator]
//  2. Host: [session], [pointfile], [config], [errors], [cache]
//  3. Presentation: [render/term], [render/dot], [render/html]
//
// # Architecture
//
// The typical data flow:
//
//	random points / point file
//	         ↓
//	    [geom] vertices
//	         ↓
//	    [kruskal] package (sort edges, union-find over [dsu])
//	         ↓
//	    [animator] package (clock ticks → snapshots)
//	         ↓
//	    terminal / DOT / SVG / PNG / HTML
//
// # Quick Start
//
//	s, err := session.NewRandom(ctx, session.Options{
//	    Vertices:      25,
//	    FramesPerEdge: 30,
//	    Pane:          geom.Size{W: 1600, H: 900},
//	})
//	if err != nil {
//	    return err
//	}
//	for s.State() != animator.Complete {
//	    snap := s.Tick(ctx)
//	    // draw snap
//	}
//
// # Main Packages
//
// ## Core
//
// [dsu] - Disjoint-set forest with path compression and union by height.
//
// [kruskal] - Complete-graph edge generation and Kruskal selection. Results
// hold the accepted edges in acceptance order.
//
// [animator] - Playback state machine (idle, playing, paused, complete) and
// the command enum shared by every input device.
//
// ## Host
//
// [session] - One run: vertex set, tree, animator and a UUID. Emits
// [observability] hooks; [metrics] turns them into Prometheus series.
//
// [pointfile] - Reads and writes "x,y" point files and fits them to the pane.
//
// [config] - TOML and YAML settings with validation.
//
// [cache] - File cache for rendered exports.
//
// ## Presentation
//
// [render/term] - Character canvas for the terminal player.
//
// [render/dot] - Graphviz DOT with pinned positions, rendered to SVG or PNG.
//
// [render/html] - Interactive ECharts page.
//
// # Testing
//
//	go test ./pkg/...                # All tests
//	go test -short ./pkg/...         # Skip Graphviz rendering
//	go test -run Example ./pkg/...   # Examples only
//
// [render/term]: https://pkg.go.dev/github.com/derian-c/MATH478-FinalProject/pkg/render/term
// [render/dot]: https://pkg.go.dev/github.com/derian-c/MATH478-FinalProject/pkg/render/dot
// [render/html]: https://pkg.go.dev/github.com/derian-c/MATH478-FinalProject/pkg/render/html
package pkg
