package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
)

// DefaultScale maps pane units to Graphviz points.
const DefaultScale = 0.5

// Colours used for the frame elements.
const (
	ColorVertex  = "black"
	ColorEdge    = "black"
	ColorPartial = "green"
	ColorActive  = "red"
)

// Options configures DOT generation.
type Options struct {
	// Pane is the drawing area the vertices live in. A zero pane is replaced
	// by the bounding box of the vertices.
	Pane geom.Size

	// Scale converts pane units to points (1/72 inch). Zero means DefaultScale.
	Scale float64

	// Labels prints vertex IDs inside the vertices.
	Labels bool
}

// ToDOT converts one animation frame to Graphviz DOT source for the neato
// engine. Every vertex is pinned at its pane position with the y axis
// flipped, since Graphviz grows y upwards. Drawn edges are black, the edge
// in progress runs green from its first endpoint to an invisible tip node,
// and its endpoints are red.
func ToDOT(snap animator.Snapshot, vertices []geom.Vertex, opts Options) string {
	pane := opts.Pane
	if pane.W <= 0 || pane.H <= 0 {
		pane = bounds(vertices)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	diameter := geom.VertexDiameter(pane.W, len(vertices)) * scale / 72

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%s, color=%s, fontcolor=white, fixedsize=true, width=%s, label=\"\"];\n",
		ColorVertex, ColorVertex, ftoa(diameter))
	fmt.Fprintf(&buf, "  edge [color=%s, penwidth=2];\n", ColorEdge)
	buf.WriteString("  corner [pos=\"0,0!\", style=invis, width=0.01];\n")
	fmt.Fprintf(&buf, "  far [pos=\"%s,%s!\", style=invis, width=0.01];\n", ftoa(pane.W*scale), ftoa(pane.H*scale))
	buf.WriteString("\n")

	for _, v := range vertices {
		attrs := []string{fmt.Sprintf("pos=%q", pos(v.Pos, pane, scale))}
		if opts.Labels {
			attrs = append(attrs, fmt.Sprintf("label=\"%d\"", v.ID))
		}
		if snap.IsActive(v.ID) {
			attrs = append(attrs, "fillcolor="+ColorActive, "color="+ColorActive)
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(v.ID), strings.Join(attrs, ", "))
	}

	if len(snap.Drawn) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range snap.Drawn {
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(e.U), nodeID(e.V))
	}

	if p := snap.Current; p != nil {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  tip [pos=%q, style=invis, width=0.01];\n", pos(p.Tip, pane, scale))
		fmt.Fprintf(&buf, "  %s -- tip [color=%s];\n", nodeID(p.Edge.U), ColorPartial)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string {
	return "v" + strconv.Itoa(id)
}

func pos(p geom.Point, pane geom.Size, scale float64) string {
	return ftoa(p.X*scale) + "," + ftoa((pane.H-p.Y)*scale) + "!"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// bounds returns the smallest pane anchored at the origin that holds every
// vertex. It is never empty.
func bounds(vertices []geom.Vertex) geom.Size {
	size := geom.Size{W: 1, H: 1}
	for _, v := range vertices {
		size.W = max(size.W, v.Pos.X)
		size.H = max(size.H, v.Pos.Y)
	}
	return size
}

// RenderSVG renders DOT source to SVG using the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using the neato engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's fixed pt dimensions with a viewBox
// anchored at the origin so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
