package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/cache"
	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/render/dot"
	"github.com/derian-c/MATH478-FinalProject/pkg/render/html"
	"github.com/derian-c/MATH478-FinalProject/pkg/session"
)

// Export formats.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
	formatHTML = "html"
)

var exportFormats = []string{formatDOT, formatSVG, formatPNG, formatHTML}

// exportOptions holds the export command's own flags.
type exportOptions struct {
	formats string
	output  string
	frame   int
	noCache bool
	labels  bool
}

// exportCommand creates the export command for writing frames to files.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		flags runFlags
		opts  exportOptions
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a frame of the animation as DOT, SVG, PNG or HTML",
		Long: `Export one frame of the animation. By default the finished tree is
written; --frame N stops after N clock ticks instead, showing the edge in
progress in green and its endpoints in red.

SVG and PNG renders are cached by the DOT source; use --no-cache to
render again.`,
		Example: `  kruskalviz export --seed 7 -o tree
  kruskalviz export -i points.txt --format svg,png,html
  kruskalviz export -n 30 --frame 100 --format png -o halfway`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(opts.formats)
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)

			s, err := newSession(ctx, cfg)
			if err != nil {
				return errors.Classify(err)
			}
			snap, err := advance(ctx, s, opts.frame)
			if err != nil {
				return err
			}

			store, err := newCache(opts.noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			base := outputBase(opts.output, formats)
			allCached := true
			for _, format := range formats {
				data, cached, err := c.renderFrame(ctx, store, format, snap, s, opts.labels)
				if err != nil {
					return err
				}
				allCached = allCached && cached

				path := base + "." + format
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}
			printStats(len(s.Vertices), len(snap.Drawn), snap.DrawnWeight(), allCached)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVar(&opts.formats, "format", formatSVG, "comma-separated formats: "+strings.Join(exportFormats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutput, "output path without extension")
	cmd.Flags().IntVar(&opts.frame, "frame", -1, "clock ticks to play before exporting (-1 for the finished tree)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print vertex IDs (DOT, SVG and PNG)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}

// advance plays the session for frame ticks, or to the end when frame is
// negative, and returns the resulting snapshot.
func advance(ctx context.Context, s *session.Session, frame int) (animator.Snapshot, error) {
	if frame < 0 {
		if err := s.Dispatch(ctx, animator.JumpToEnd); err != nil {
			return animator.Snapshot{}, err
		}
		return s.Snapshot(), nil
	}
	snap := s.Snapshot()
	for range frame {
		if snap.State == animator.Complete {
			break
		}
		snap = s.Tick(ctx)
	}
	return snap, nil
}

// renderFrame produces one export format. The bool reports a cache hit.
func (c *CLI) renderFrame(ctx context.Context, store cache.Cache, format string, snap animator.Snapshot, s *session.Session, labels bool) ([]byte, bool, error) {
	src := dot.ToDOT(snap, s.Vertices, dot.Options{Pane: s.Pane(), Labels: labels})

	switch format {
	case formatDOT:
		return []byte(src), false, nil

	case formatSVG, formatPNG:
		render := dot.RenderSVG
		if format == formatPNG {
			render = dot.RenderPNG
		}
		var (
			data   []byte
			cached bool
		)
		label := "Rendering " + strings.ToUpper(format)
		err := withSpinner(newSpinner(ctx, label), label+" failed", func() error {
			var err error
			data, cached, err = cache.Fetch(ctx, store, cache.ArtifactKey(src, format), format, cache.DefaultTTL, func() ([]byte, error) {
				return render(ctx, src)
			})
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, err
			}
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		c.Logger.Debug("rendered", "format", format, "bytes", len(data), "cached", cached)
		return data, cached, nil

	case formatHTML:
		var buf bytes.Buffer
		title := fmt.Sprintf("Kruskal MST · %d vertices", len(s.Vertices))
		if err := html.Render(&buf, snap, s.Vertices, html.Options{Pane: s.Pane(), Title: title}); err != nil {
			return nil, false, fmt.Errorf("render html: %w", err)
		}
		return buf.Bytes(), false, nil
	}
	return nil, false, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
}

// parseFormats parses a comma-separated format list, dropping duplicates.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{formatSVG}, nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if !slices.Contains(exportFormats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (use %s)", f, strings.Join(exportFormats, ", "))
		}
		out = append(out, f)
	}
	return out, nil
}

// outputBase strips a trailing extension from output when it names the only
// requested format, so "-o tree.svg --format svg" writes tree.svg.
func outputBase(output string, formats []string) string {
	if output == "" {
		output = defaultOutput
	}
	ext := filepath.Ext(output)
	if len(formats) == 1 && ext == "."+formats[0] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
