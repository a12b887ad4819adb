package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
)

// playCommand creates the play command for the interactive animation.
func (c *CLI) playCommand() *cobra.Command {
	var (
		flags       runFlags
		metricsAddr string
		logFile     string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the minimum spanning tree in the terminal",
		Long: `Animate Kruskal's algorithm: vertices are drawn first, then every tree
edge grows from one endpoint to the other in the order it was accepted.

Keys:
  space    pause or resume
  n        new random vertex set
  q        replay from the first edge
  e        skip to the finished tree
  + / -    faster / slower
  esc      quit

Playback keys can be rebound in the config file's [keys] table, e.g.
jump-to-end = "x".`,
		Example: `  kruskalviz play
  kruskalviz play -n 60 --frames 10
  kruskalviz play -i points.txt --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// The alternate screen owns the terminal, so run logs go to
			// --log-file or nowhere.
			runLogger, closeLog, err := openLogFile(logFile, c.Logger.GetLevel())
			if err != nil {
				return err
			}
			defer closeLog()
			ctx = withLogger(ctx, runLogger)

			s, err := newSession(ctx, cfg)
			if err != nil {
				return errors.Classify(err)
			}
			c.Logger.Debug("starting player", "run", s.ID, "vertices", len(s.Vertices), "tick_rate", cfg.TickRate)

			if metricsAddr != "" {
				stop, err := c.serveMetrics(metricsAddr)
				if err != nil {
					return err
				}
				defer stop()
			}

			model, err := NewPlayerModel(ctx, s, cfg.TickRate).WithKeys(cfg.Keys)
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("player: %w", err)
			}
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write run logs to this file while the player is open")
	return cmd
}

// serveMetrics exposes the CLI's registry on addr until stop is called.
func (c *CLI) serveMetrics(addr string) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			c.Logger.Error("metrics server", "err", err)
		}
	}()
	c.Logger.Info("serving metrics", "addr", "http://"+ln.Addr().String()+"/metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
