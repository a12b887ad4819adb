package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
	"github.com/derian-c/MATH478-FinalProject/pkg/observability"
)

// ErrFixedVertices is returned when a run over a loaded point set is asked
// to regenerate its vertices.
var ErrFixedVertices = errors.New("vertex set was loaded from a file and cannot be regenerated")

// Source says where a session's vertices came from.
type Source string

const (
	SourceRandom Source = "random"
	SourceFile   Source = "file"
)

// Options configures a session.
type Options struct {
	// Vertices is the size of random vertex sets. Ignored by NewFromPoints.
	Vertices int

	// FramesPerEdge is the number of ticks spent drawing one edge.
	// Zero means animator.DefaultFramesPerEdge.
	FramesPerEdge int

	// Pane bounds random vertex placement.
	Pane geom.Size

	// Seed seeds the random stream. Zero picks a fresh seed, which is
	// reported by Session.Seed.
	Seed uint64

	// Logger receives run events. Nil discards them.
	Logger *log.Logger
}

// Session is one visualization run.
type Session struct {
	ID       uuid.UUID
	Source   Source
	Vertices []geom.Vertex
	Result   *kruskal.Result

	opts     Options
	seed     uint64
	rng      *rand.Rand
	anim     *animator.Animator
	logger   *log.Logger
	finished bool
}

// NewRandom creates a run over opts.Vertices random points.
func NewRandom(ctx context.Context, opts Options) (*Session, error) {
	if opts.Vertices < 1 {
		return nil, fmt.Errorf("%w: asked for %d random vertices", kruskal.ErrInsufficientVertices, opts.Vertices)
	}
	s := newSession(SourceRandom, opts)
	s.rng, s.seed = geom.NewRand(opts.Seed)
	points := geom.RandomPoints(s.rng, opts.Vertices, opts.Pane)
	if err := s.load(ctx, points); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromPoints creates a run over a fixed point set.
func NewFromPoints(ctx context.Context, points []geom.Point, opts Options) (*Session, error) {
	s := newSession(SourceFile, opts)
	if err := s.load(ctx, points); err != nil {
		return nil, err
	}
	return s, nil
}

func newSession(src Source, opts Options) *Session {
	if opts.FramesPerEdge == 0 {
		opts.FramesPerEdge = animator.DefaultFramesPerEdge
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		Source: src,
		opts:   opts,
		anim:   animator.New(),
		logger: logger,
	}
}

// load starts a new run over points: fresh ID, new tree, animator rewound.
func (s *Session) load(ctx context.Context, points []geom.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := uuid.New()
	vertices := geom.NewVertices(points)
	hooks := observability.Run()
	hooks.OnGenerate(ctx, id.String(), string(s.Source), len(vertices))

	start := time.Now()
	res, err := kruskal.ComputeMST(vertices)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnMSTComplete(ctx, id.String(), 0, 0, elapsed, err)
		return err
	}
	hooks.OnMSTComplete(ctx, id.String(), len(res.Edges), res.TotalWeight, elapsed, nil)

	if err := s.anim.Load(res.Edges, s.framesPerEdge()); err != nil {
		return err
	}

	s.ID = id
	s.Vertices = vertices
	s.Result = res
	s.finished = s.anim.State() == animator.Complete

	s.logger.Info("tree selected",
		"run", shortID(id),
		"source", s.Source,
		"vertices", len(vertices),
		"edges", len(res.Edges),
		"weight", fmt.Sprintf("%.2f", res.TotalWeight))
	s.logger.Debug("selection stats",
		"run", shortID(id),
		"considered", res.Considered,
		"rejected", res.Rejected,
		"elapsed", elapsed)
	return nil
}

func (s *Session) framesPerEdge() int {
	if n := s.anim.FramesPerEdge(); n > 0 {
		return n
	}
	return s.opts.FramesPerEdge
}

// Regenerate replaces the vertex set with fresh random points and starts a
// new run. Sessions over loaded points return ErrFixedVertices.
func (s *Session) Regenerate(ctx context.Context) error {
	if s.Source != SourceRandom {
		return ErrFixedVertices
	}
	points := geom.RandomPoints(s.rng, len(s.Vertices), s.opts.Pane)
	return s.load(ctx, points)
}

// Dispatch executes a playback command. Restart regenerates the vertex set;
// every other command goes to the animator.
func (s *Session) Dispatch(ctx context.Context, cmd animator.Command) error {
	observability.Run().OnCommand(ctx, s.ID.String(), cmd.String())
	s.logger.Debug("command", "run", shortID(s.ID), "cmd", cmd)

	if cmd == animator.Restart {
		return s.Regenerate(ctx)
	}
	if !s.anim.Apply(cmd) {
		return fmt.Errorf("unsupported command %v", cmd)
	}
	if cmd == animator.JumpToStart {
		s.finished = s.anim.State() == animator.Complete
	}
	s.checkFinished(ctx)
	return nil
}

// Tick advances the animation by one frame and returns the new snapshot.
func (s *Session) Tick(ctx context.Context) animator.Snapshot {
	s.anim.Tick()
	s.checkFinished(ctx)
	return s.anim.Snapshot()
}

// checkFinished fires the playback hook once per pass through the edges.
func (s *Session) checkFinished(ctx context.Context) {
	if s.finished || s.anim.State() != animator.Complete {
		return
	}
	s.finished = true
	observability.Run().OnPlaybackComplete(ctx, s.ID.String(), s.anim.Len())
	s.logger.Debug("playback complete", "run", shortID(s.ID), "edges", s.anim.Len())
}

// Speed adds delta to the frames spent per edge. Positive deltas slow the
// animation down. The result is clamped to [1, animator.MaxFramesPerEdge].
func (s *Session) Speed(delta int) error {
	fpe := s.anim.FramesPerEdge()
	switch {
	case delta > animator.MaxFramesPerEdge-fpe:
		fpe = animator.MaxFramesPerEdge
	case delta < 1-fpe:
		fpe = 1
	default:
		fpe += delta
	}
	return s.anim.SetFramesPerEdge(fpe)
}

// Snapshot returns the current frame without advancing it.
func (s *Session) Snapshot() animator.Snapshot {
	return s.anim.Snapshot()
}

// State reports the animator's lifecycle state.
func (s *Session) State() animator.State { return s.anim.State() }

// FramesPerEdge reports the current drawing speed.
func (s *Session) FramesPerEdge() int { return s.anim.FramesPerEdge() }

// Seed reports the seed of the random stream, zero for file sessions.
func (s *Session) Seed() uint64 { return s.seed }

// Pane reports the drawing pane the session was created with.
func (s *Session) Pane() geom.Size { return s.opts.Pane }

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
