// Package html renders animation frames as interactive ECharts pages.
//
// Vertices keep their pane coordinates (the chart uses the "none" layout),
// so the page shows the same picture as the terminal and Graphviz views,
// with pan and zoom on top.
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
)

// DefaultWidth is the chart width in CSS pixels.
const DefaultWidth = 960

const tipName = "partial-tip"

// Options configures the page.
type Options struct {
	// Pane is the drawing area the vertices live in.
	Pane geom.Size

	// Title is shown above the chart and in the browser tab.
	Title string

	// Width is the chart width in pixels; the height follows the pane's
	// aspect ratio. Zero means DefaultWidth.
	Width int
}

// Render writes a standalone HTML page showing one frame.
func Render(w io.Writer, snap animator.Snapshot, vertices []geom.Vertex, opts Options) error {
	page := components.NewPage()
	page.PageTitle = title(opts)
	page.AddCharts(Chart(snap, vertices, opts))
	return page.Render(w)
}

// Chart builds the graph chart for one frame.
func Chart(snap animator.Snapshot, vertices []geom.Vertex, o Options) *charts.Graph {
	width := o.Width
	if width <= 0 {
		width = DefaultWidth
	}
	pane := o.Pane
	if pane.W <= 0 || pane.H <= 0 {
		pane = geom.Size{W: float64(width), H: float64(width)}
	}
	height := int(float64(width) * pane.H / pane.W)
	px := float64(width) / pane.W
	size := float32(geom.VertexDiameter(pane.W, len(vertices)) * px)

	nodes := make([]opts.GraphNode, 0, len(vertices)+3)
	nodes = append(nodes, anchor("corner-min", geom.Point{}), anchor("corner-max", geom.Point{X: pane.W, Y: pane.H}))
	for _, v := range vertices {
		color := "black"
		if snap.IsActive(v.ID) {
			color = "red"
		}
		nodes = append(nodes, opts.GraphNode{
			Name:       nodeName(v.ID),
			X:          float32(v.Pos.X),
			Y:          float32(v.Pos.Y),
			SymbolSize: size,
			ItemStyle:  &opts.ItemStyle{Color: color},
		})
	}

	links := make([]opts.GraphLink, 0, len(snap.Drawn)+1)
	for _, e := range snap.Drawn {
		links = append(links, opts.GraphLink{
			Source:    nodeName(e.U),
			Target:    nodeName(e.V),
			Value:     float32(e.Weight),
			LineStyle: &opts.LineStyle{Color: "black", Width: 2},
		})
	}
	if p := snap.Current; p != nil {
		nodes = append(nodes, anchor(tipName, p.Tip))
		links = append(links, opts.GraphLink{
			Source:    nodeName(p.Edge.U),
			Target:    tipName,
			LineStyle: &opts.LineStyle{Color: "green", Width: 2},
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title(o),
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title(o),
			Subtitle: subtitle(snap),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"mst",
		nodes,
		links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "none",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
	)
	return graph
}

// anchor is an invisible node used to fix the canvas extent or to end the
// edge in progress.
func anchor(name string, p geom.Point) opts.GraphNode {
	return opts.GraphNode{
		Name:       name,
		X:          float32(p.X),
		Y:          float32(p.Y),
		SymbolSize: 0,
	}
}

func nodeName(id int) string {
	return "v" + strconv.Itoa(id)
}

func title(o Options) string {
	if o.Title != "" {
		return o.Title
	}
	return "Kruskal minimum spanning tree"
}

func subtitle(snap animator.Snapshot) string {
	return fmt.Sprintf("%d of %d edges, weight %.2f", snap.Cursor, snap.Total, snap.DrawnWeight())
}
