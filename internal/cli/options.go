package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/config"
	"github.com/derian-c/MATH478-FinalProject/pkg/pointfile"
	"github.com/derian-c/MATH478-FinalProject/pkg/session"
)

// runFlags holds the flags shared by every command that builds a run.
type runFlags struct {
	configPath    string
	vertices      int
	input         string
	framesPerEdge int
	seed          uint64
	width         float64
	height        float64
	tickRate      int
}

// addRunFlags registers the shared run flags on cmd.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	d := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "config file (.toml, .yaml); defaults to "+defaultConfigHint())
	flags.IntVarP(&f.vertices, "vertices", "n", d.Vertices, "number of random vertices")
	flags.StringVarP(&f.input, "input", "i", "", "point file with one \"x,y\" pair per line")
	flags.IntVarP(&f.framesPerEdge, "frames", "f", d.FramesPerEdge, "frames spent drawing each edge")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
	flags.Float64Var(&f.width, "width", d.Width, "pane width")
	flags.Float64Var(&f.height, "height", d.Height, "pane height")
	flags.IntVar(&f.tickRate, "tick-rate", d.TickRate, "animation frames per second")

	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
	_ = cmd.MarkFlagFilename("input", "txt", "csv")
}

func defaultConfigHint() string {
	path, err := config.DefaultPath()
	if err != nil {
		return "none"
	}
	return path
}

// resolveConfig loads the config file and overlays every flag the user set.
func resolveConfig(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else if path, perr := config.DefaultPath(); perr == nil {
		cfg, err = config.LoadOptional(path)
	} else {
		cfg = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("vertices") {
		cfg.Vertices = f.vertices
	}
	if flags.Changed("input") {
		cfg.Input = f.input
	}
	if flags.Changed("frames") {
		cfg.FramesPerEdge = f.framesPerEdge
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("tick-rate") {
		cfg.TickRate = f.tickRate
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSession builds the run described by cfg: points from cfg.Input when
// set, random points otherwise. The run logs to the context's logger.
func newSession(ctx context.Context, cfg config.Config) (*session.Session, error) {
	logger := loggerFromContext(ctx)
	opts := session.Options{
		Vertices:      cfg.Vertices,
		FramesPerEdge: cfg.FramesPerEdge,
		Pane:          cfg.Pane(),
		Seed:          cfg.Seed,
		Logger:        logger,
	}
	if cfg.Random() {
		return session.NewRandom(ctx, opts)
	}

	points, err := pointfile.Load(cfg.Input, cfg.Pane())
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded point file", "path", cfg.Input, "points", len(points))
	return session.NewFromPoints(ctx, points, opts)
}

// describeSource returns a short label for where a run's vertices came from.
func describeSource(s *session.Session, cfg config.Config) string {
	if s.Source == session.SourceFile {
		return cfg.Input
	}
	return fmt.Sprintf("random, seed %d", s.Seed())
}
