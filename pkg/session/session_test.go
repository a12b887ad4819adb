package session

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
	"github.com/derian-c/MATH478-FinalProject/pkg/observability"
)

var pane = geom.Size{W: 1600, H: 900}

func square() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
}

type recordingHooks struct {
	observability.NoopRunHooks
	generated []string
	commands  []string
	completed int
	mstErrors int
}

func (h *recordingHooks) OnGenerate(_ context.Context, _, source string, _ int) {
	h.generated = append(h.generated, source)
}

func (h *recordingHooks) OnMSTComplete(_ context.Context, _ string, _ int, _ float64, _ time.Duration, err error) {
	if err != nil {
		h.mstErrors++
	}
}

func (h *recordingHooks) OnCommand(_ context.Context, _, command string) {
	h.commands = append(h.commands, command)
}

func (h *recordingHooks) OnPlaybackComplete(context.Context, string, int) {
	h.completed++
}

func withHooks(t *testing.T) *recordingHooks {
	t.Helper()
	h := &recordingHooks{}
	observability.SetRunHooks(h)
	t.Cleanup(observability.Reset)
	return h
}

func TestNewFromPoints(t *testing.T) {
	h := withHooks(t)
	ctx := context.Background()

	s, err := NewFromPoints(ctx, square(), Options{FramesPerEdge: 2})
	require.NoError(t, err)

	assert.Equal(t, SourceFile, s.Source)
	assert.Len(t, s.Vertices, 4)
	assert.Len(t, s.Result.Edges, 3)
	assert.InDelta(t, 30.0, s.Result.TotalWeight, 1e-9)
	assert.Equal(t, animator.Playing, s.State())
	assert.Equal(t, uint64(0), s.Seed())
	assert.Equal(t, []string{"file"}, h.generated)
}

func TestNewFromPointsEmpty(t *testing.T) {
	h := withHooks(t)

	_, err := NewFromPoints(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, kruskal.ErrInsufficientVertices)
	assert.Equal(t, 1, h.mstErrors)
}

func TestNewRandom(t *testing.T) {
	ctx := context.Background()

	a, err := NewRandom(ctx, Options{Vertices: 12, Pane: pane, Seed: 42})
	require.NoError(t, err)
	b, err := NewRandom(ctx, Options{Vertices: 12, Pane: pane, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, SourceRandom, a.Source)
	assert.Equal(t, uint64(42), a.Seed())
	assert.Len(t, a.Result.Edges, 11)
	assert.Equal(t, a.Vertices, b.Vertices, "same seed gives the same vertex set")
	assert.NotEqual(t, a.ID, b.ID, "every run gets its own ID")
	assert.Equal(t, animator.DefaultFramesPerEdge, a.FramesPerEdge())

	for _, v := range a.Vertices {
		assert.True(t, v.Pos.X >= 0 && v.Pos.X <= pane.W, "x in pane: %v", v.Pos)
		assert.True(t, v.Pos.Y >= 0 && v.Pos.Y <= pane.H, "y in pane: %v", v.Pos)
	}
}

func TestNewRandomRejectsEmpty(t *testing.T) {
	_, err := NewRandom(context.Background(), Options{Vertices: 0, Pane: pane})
	assert.ErrorIs(t, err, kruskal.ErrInsufficientVertices)
}

func TestNewRandomCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRandom(ctx, Options{Vertices: 5, Pane: pane})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSingleVertexIsComplete(t *testing.T) {
	h := withHooks(t)
	ctx := context.Background()

	s, err := NewFromPoints(ctx, []geom.Point{{X: 1, Y: 1}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, animator.Complete, s.State())

	s.Tick(ctx)
	assert.Zero(t, h.completed, "a run that starts complete never finishes playback")
}

func TestTickCompletesOnce(t *testing.T) {
	h := withHooks(t)
	ctx := context.Background()

	s, err := NewFromPoints(ctx, square(), Options{FramesPerEdge: 2})
	require.NoError(t, err)

	var snap animator.Snapshot
	for range 6 {
		snap = s.Tick(ctx)
	}
	assert.Equal(t, animator.Complete, snap.State)
	assert.Len(t, snap.Drawn, 3)

	s.Tick(ctx)
	s.Tick(ctx)
	assert.Equal(t, 1, h.completed)
}

func TestDispatch(t *testing.T) {
	h := withHooks(t)
	ctx := context.Background()

	s, err := NewFromPoints(ctx, square(), Options{FramesPerEdge: 2})
	require.NoError(t, err)

	require.NoError(t, s.Dispatch(ctx, animator.TogglePause))
	assert.Equal(t, animator.Paused, s.State())
	s.Tick(ctx)
	assert.Equal(t, 0, s.Snapshot().Cursor, "paused runs do not advance")

	require.NoError(t, s.Dispatch(ctx, animator.JumpToEnd))
	assert.Equal(t, animator.Complete, s.State())
	assert.Equal(t, 1, h.completed)

	require.NoError(t, s.Dispatch(ctx, animator.JumpToStart))
	snap := s.Snapshot()
	assert.Equal(t, animator.Playing, snap.State)
	assert.Zero(t, snap.Cursor)

	require.NoError(t, s.Dispatch(ctx, animator.JumpToEnd))
	assert.Equal(t, 2, h.completed, "a replay finishes again")

	assert.Equal(t, []string{"toggle-pause", "jump-to-end", "jump-to-start", "jump-to-end"}, h.commands)
}

func TestDispatchRestart(t *testing.T) {
	ctx := context.Background()

	t.Run("random", func(t *testing.T) {
		s, err := NewRandom(ctx, Options{Vertices: 8, Pane: pane, Seed: 7, FramesPerEdge: 3})
		require.NoError(t, err)
		oldID, oldVertices := s.ID, s.Vertices
		s.Tick(ctx)

		require.NoError(t, s.Dispatch(ctx, animator.Restart))
		assert.NotEqual(t, oldID, s.ID)
		assert.NotEqual(t, oldVertices, s.Vertices)
		assert.Len(t, s.Vertices, 8)
		snap := s.Snapshot()
		assert.Zero(t, snap.Cursor)
		require.NotNil(t, snap.Current)
		assert.Equal(t, snap.Current.Edge.From, snap.Current.Tip)
	})

	t.Run("file", func(t *testing.T) {
		s, err := NewFromPoints(ctx, square(), Options{})
		require.NoError(t, err)
		oldID := s.ID

		err = s.Dispatch(ctx, animator.Restart)
		assert.True(t, errors.Is(err, ErrFixedVertices))
		assert.Equal(t, oldID, s.ID)
	})
}

func TestSpeed(t *testing.T) {
	ctx := context.Background()
	s, err := NewFromPoints(ctx, square(), Options{FramesPerEdge: 4})
	require.NoError(t, err)

	require.NoError(t, s.Speed(2))
	assert.Equal(t, 6, s.FramesPerEdge())

	require.NoError(t, s.Speed(-100))
	assert.Equal(t, 1, s.FramesPerEdge())

	s.Tick(ctx)
	assert.Equal(t, 1, s.Snapshot().Cursor)
}

func TestSpeedCappedAtMax(t *testing.T) {
	ctx := context.Background()
	s, err := NewFromPoints(ctx, square(), Options{FramesPerEdge: 10})
	require.NoError(t, err)
	s.Tick(ctx)

	for range 200 {
		require.NoError(t, s.Speed(max(1, s.FramesPerEdge()/5)))
		s.Tick(ctx)
		cur := s.Snapshot().Current
		require.NotNil(t, cur)
		require.GreaterOrEqual(t, cur.Alpha, 0.0)
		require.Less(t, cur.Alpha, 1.0)
	}
	assert.Equal(t, animator.MaxFramesPerEdge, s.FramesPerEdge())

	require.NoError(t, s.Speed(math.MaxInt))
	assert.Equal(t, animator.MaxFramesPerEdge, s.FramesPerEdge())
	require.NoError(t, s.Speed(math.MinInt))
	assert.Equal(t, 1, s.FramesPerEdge())
}

func TestRegenerateKeepsSpeed(t *testing.T) {
	ctx := context.Background()
	s, err := NewRandom(ctx, Options{Vertices: 5, Pane: pane, FramesPerEdge: 10})
	require.NoError(t, err)

	require.NoError(t, s.Speed(5))
	require.NoError(t, s.Regenerate(ctx))
	assert.Equal(t, 15, s.FramesPerEdge())
}
