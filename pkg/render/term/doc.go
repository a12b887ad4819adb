// Package term rasterizes animation frames onto a character grid.
//
// # Overview
//
// A [Canvas] is a fixed-size grid of [Cell] values. [Canvas.Draw] maps the
// pane onto the grid and paints one frame in layers:
//
//  1. drawn edges
//  2. the edge in progress, from its first endpoint to the tip
//  3. vertices
//  4. endpoints of the edge in progress
//
// Later layers overwrite earlier ones. Lines use Bresenham's algorithm.
// [Canvas.Render] turns the grid into a string, colouring runs of equal
// cells with the lipgloss styles in [Styles].
//
// # Usage
//
//	c := term.NewCanvas(width, height)
//	c.Draw(snap, vertices, pane)
//	fmt.Print(c.Render(term.DefaultStyles()))
//
// Terminal cells are roughly twice as tall as they are wide. The pane is
// scaled to the grid on each axis independently, so the caller picks a grid
// whose shape matches the pane.
package term
