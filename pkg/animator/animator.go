package animator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
)

// DefaultFramesPerEdge is the number of ticks spent drawing one edge. At 60
// ticks per second an edge takes half a second.
const DefaultFramesPerEdge = 30

// MaxFramesPerEdge bounds the drawing speed: one minute per edge at 60 Hz.
const MaxFramesPerEdge = 3600

// ErrInvalidFramesPerEdge is returned when frames per edge is outside
// [1, MaxFramesPerEdge].
var ErrInvalidFramesPerEdge = errors.New("frames per edge must be between 1 and 3600")

// State is the animator's position in its lifecycle.
type State int

const (
	// Idle means no edge list has been loaded.
	Idle State = iota
	// Playing means edges are being drawn.
	Playing
	// Paused means drawing is suspended before the last edge.
	Paused
	// Complete means every edge is drawn.
	Complete
)

var stateNames = [...]string{
	Idle:     "idle",
	Playing:  "playing",
	Paused:   "paused",
	Complete: "complete",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Animator replays MST edges. The zero value is Idle; use [New] or load it
// before ticking.
type Animator struct {
	edges         []kruskal.Edge
	framesPerEdge int
	cursor        int // edges fully drawn
	ticks         int // frames into edges[cursor]
	paused        bool
	loaded        bool
}

// New returns an Idle animator.
func New() *Animator {
	return &Animator{}
}

// Load replaces the edge list and starts playback from the first edge. The
// list is copied. An empty list is immediately Complete.
func (a *Animator) Load(edges []kruskal.Edge, framesPerEdge int) error {
	if !validFramesPerEdge(framesPerEdge) {
		return fmt.Errorf("%w: got %d", ErrInvalidFramesPerEdge, framesPerEdge)
	}
	a.edges = slices.Clone(edges)
	a.framesPerEdge = framesPerEdge
	a.loaded = true
	a.Restart()
	return nil
}

// Tick advances the current edge by one frame. It does nothing while paused
// or complete. Calling Tick on an animator that was never loaded is a
// programming error and panics.
func (a *Animator) Tick() {
	if !a.loaded {
		panic("animator: Tick called before Load")
	}
	if a.paused || a.cursor >= len(a.edges) {
		return
	}
	a.ticks++
	if a.ticks >= a.framesPerEdge {
		a.ticks = 0
		a.cursor++
	}
}

// TogglePause flips between Playing and Paused. It has no effect when Idle
// or Complete.
func (a *Animator) TogglePause() {
	if !a.loaded || a.cursor >= len(a.edges) {
		return
	}
	a.paused = !a.paused
}

// Restart rewinds to the first edge and resumes playback, leaving the
// animator exactly as Load left it.
func (a *Animator) Restart() {
	if !a.loaded {
		return
	}
	a.cursor = 0
	a.ticks = 0
	a.paused = false
}

// SkipToEnd draws every edge at once. The paused flag is cleared since a
// complete animation cannot be paused.
func (a *Animator) SkipToEnd() {
	if !a.loaded {
		return
	}
	a.cursor = len(a.edges)
	a.ticks = 0
	a.paused = false
}

// SetFramesPerEdge changes the drawing speed. The current edge keeps its
// progress fraction as closely as the new frame count allows, so alpha stays
// in [0, 1).
func (a *Animator) SetFramesPerEdge(n int) error {
	if !validFramesPerEdge(n) {
		return fmt.Errorf("%w: got %d", ErrInvalidFramesPerEdge, n)
	}
	if a.framesPerEdge > 0 {
		// Both factors are at most MaxFramesPerEdge, so the product fits.
		a.ticks = min(max(a.ticks*n/a.framesPerEdge, 0), n-1)
	}
	a.framesPerEdge = n
	return nil
}

func validFramesPerEdge(n int) bool {
	return n >= 1 && n <= MaxFramesPerEdge
}

// State reports the current lifecycle state.
func (a *Animator) State() State {
	switch {
	case !a.loaded:
		return Idle
	case a.cursor >= len(a.edges):
		return Complete
	case a.paused:
		return Paused
	default:
		return Playing
	}
}

// Cursor returns the number of fully drawn edges.
func (a *Animator) Cursor() int { return a.cursor }

// Ticks returns the frames spent on the edge currently being drawn.
func (a *Animator) Ticks() int { return a.ticks }

// Len returns the number of loaded edges.
func (a *Animator) Len() int { return len(a.edges) }

// FramesPerEdge returns the configured frames per edge, or 0 when Idle.
func (a *Animator) FramesPerEdge() int { return a.framesPerEdge }

// Paused reports whether playback is paused.
func (a *Animator) Paused() bool { return a.paused }

// Snapshot returns the draw state for the current frame. It does not modify
// the animator.
func (a *Animator) Snapshot() Snapshot {
	s := Snapshot{
		State:  a.State(),
		Cursor: a.cursor,
		Total:  len(a.edges),
	}
	if !a.loaded {
		return s
	}
	s.Drawn = a.edges[:a.cursor:a.cursor]
	if a.cursor < len(a.edges) {
		e := a.edges[a.cursor]
		alpha := float64(a.ticks) / float64(a.framesPerEdge)
		s.Current = &Progress{
			Edge:  e,
			Alpha: alpha,
			Tip:   geom.Lerp(e.From, e.To, alpha),
		}
		s.Active = []int{e.U, e.V}
	}
	return s
}
