// Package render groups the presentation adapters for animation frames.
//
// # Overview
//
// Every adapter consumes the same input: an [animator.Snapshot] plus the
// vertex set and pane it was computed for. None of them mutate animation
// state, so any number can render the same frame.
//
//   - [term]: character canvas with lipgloss colours, used by the player
//   - [dot]: Graphviz DOT source, rendered to SVG or PNG in-process
//   - [html]: standalone ECharts page with pan and zoom
//
// # Colours
//
// All adapters use the same scheme: drawn edges in the foreground colour,
// the edge in progress in green, and its two endpoints in red.
package render
