package cli

import (
	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/pointfile"
)

// pointsCommand creates the points command for generating point files.
func (c *CLI) pointsCommand() *cobra.Command {
	var (
		flags  runFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Generate a random point file",
		Long: `Generate random points the same way play does and write them as a
point file: one "x,y" pair per line. The file can be edited and fed back
with --input.`,
		Example: `  kruskalviz points -n 40 --seed 3 -o points.txt
  kruskalviz play -i points.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}

			if cfg.Input != "" {
				c.Logger.Warn("ignoring input; points are always generated", "input", cfg.Input)
			}

			rng, seed := geom.NewRand(cfg.Seed)
			points := geom.RandomPoints(rng, cfg.Vertices, cfg.Pane())
			c.Logger.Debug("generated points", "count", len(points), "seed", seed)

			if output == "" {
				return pointfile.Write(cmd.OutOrStdout(), points)
			}
			if err := pointfile.WriteFile(output, points); err != nil {
				return err
			}
			printSuccess("Wrote %d points (seed %d)", len(points), seed)
			printFile(output)
			printNextStep("Watch the tree", "kruskalviz play -i "+output)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
