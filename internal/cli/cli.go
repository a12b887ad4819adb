// Package cli implements the kruskalviz command-line interface.
//
// This package provides commands for watching Kruskal's algorithm build a
// minimum spanning tree, printing the selected edges, exporting frames as
// images, and generating point files. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - play: Animate the tree in the terminal
//   - mst: Print the selected edges as a table or JSON
//   - export: Write a frame as DOT, SVG, PNG or HTML
//   - points: Generate a random point file
//   - cache: Manage the export cache
//
// # Configuration
//
// Run settings come from the config file (--config, or the default
// location when present) overlaid with command-line flags. See
// [github.com/derian-c/MATH478-FinalProject/pkg/config].
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/buildinfo"
	"github.com/derian-c/MATH478-FinalProject/pkg/cache"
	"github.com/derian-c/MATH478-FinalProject/pkg/metrics"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "kruskalviz"

	// defaultOutput is the base name of exported files.
	defaultOutput = "kruskal"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	Metrics *metrics.Registry
}

// New creates a new CLI instance with a default logger and its own metrics
// registry.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Metrics: metrics.NewRegistry(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kruskalviz animates Kruskal's minimum spanning tree algorithm",
		Long:         `Kruskalviz places points in a pane, selects the minimum spanning tree of the complete Euclidean graph over them with Kruskal's algorithm, and draws the chosen edges one by one.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.playCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.pointsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}
