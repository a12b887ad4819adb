package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/buildinfo"
	"github.com/derian-c/MATH478-FinalProject/pkg/config"
	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
	"github.com/derian-c/MATH478-FinalProject/pkg/session"
)

// mstReport is the --json output of the mst command.
type mstReport struct {
	Version     string         `json:"version"`
	Run         string         `json:"run"`
	Source      string         `json:"source"`
	Seed        uint64         `json:"seed,omitempty"`
	Pane        geom.Size      `json:"pane"`
	Vertices    []geom.Vertex  `json:"vertices"`
	Edges       []kruskal.Edge `json:"edges"`
	TotalWeight float64        `json:"total_weight"`
	Considered  int            `json:"considered"`
	Rejected    int            `json:"rejected"`
}

// mstCommand creates the mst command for printing the selected edges.
func (c *CLI) mstCommand() *cobra.Command {
	var (
		flags  runFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree edges",
		Long: `Compute the minimum spanning tree of the run and print its edges in
the order Kruskal's algorithm accepted them.`,
		Example: `  kruskalviz mst -n 10 --seed 42
  kruskalviz mst -i points.txt --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)

			prog := newProgress(c.Logger)
			s, err := newSession(ctx, cfg)
			if err != nil {
				return errors.Classify(err)
			}
			prog.done(fmt.Sprintf("Selected %d edges over %d vertices", len(s.Result.Edges), len(s.Vertices)))

			if asJSON {
				return writeReport(cmd.OutOrStdout(), s)
			}
			printEdgeTable(cmd.OutOrStdout(), s, cfg)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run as JSON")
	return cmd
}

func writeReport(w io.Writer, s *session.Session) error {
	rep := mstReport{
		Version:     buildinfo.Short(),
		Run:         s.ID.String(),
		Source:      string(s.Source),
		Seed:        s.Seed(),
		Pane:        s.Pane(),
		Vertices:    s.Vertices,
		Edges:       s.Result.Edges,
		TotalWeight: s.Result.TotalWeight,
		Considered:  s.Result.Considered,
		Rejected:    s.Result.Rejected,
	}
	if rep.Edges == nil {
		rep.Edges = []kruskal.Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// printEdgeTable renders the accepted edges with a running total.
func printEdgeTable(w io.Writer, s *session.Session, cfg config.Config) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(s.Result.Edges))
	total := 0.0
	for i, e := range s.Result.Edges {
		total += e.Weight
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%d - %d", e.U, e.V),
			strconv.FormatFloat(e.Weight, 'f', 2, 64),
			strconv.FormatFloat(total, 'f', 2, 64),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Edge", "Weight", "Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 2 || col == 3 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})

	fmt.Fprintln(w, StyleTitle.Render("Minimum spanning tree"))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, keyValue("Vertices", strconv.Itoa(len(s.Vertices))))
	fmt.Fprintln(w, keyValue("Source", describeSource(s, cfg)))
	fmt.Fprintln(w, keyValue("Weight", strconv.FormatFloat(s.Result.TotalWeight, 'f', 2, 64)))
	fmt.Fprintln(w, keyValue("Considered", fmt.Sprintf("%d (%d rejected)", s.Result.Considered, s.Result.Rejected)))
}
