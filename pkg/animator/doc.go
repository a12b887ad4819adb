// Package animator replays an ordered list of MST edges one frame at a time.
//
// An [Animator] is a small state machine driven by an external fixed-rate
// clock. Each call to [Animator.Tick] advances the edge being drawn by one
// frame; after FramesPerEdge frames the edge is complete and the cursor moves
// on. [Animator.Snapshot] exposes what a presentation layer needs to draw the
// current frame: the finished edges, the partially drawn edge with its
// interpolation fraction and tip, and the two vertices to highlight.
//
// # States
//
//	Idle      nothing loaded
//	Playing   cursor < len, not paused
//	Paused    cursor < len, paused
//	Complete  cursor == len
//
// [Animator.Load] and [Animator.Restart] enter Playing (or Complete for an
// empty list). [Animator.TogglePause] flips between Playing and Paused.
// [Animator.SkipToEnd] enters Complete from anywhere.
//
// # Commands
//
// Input layers translate their own events into a [Command] and hand it to
// [Animator.Apply]. Only [Restart] is not handled here: it asks for a new
// vertex set, which is the caller's business.
//
// # Concurrency
//
// An Animator is not safe for concurrent use. It expects a single clock call
// site that ticks and then snapshots.
package animator
