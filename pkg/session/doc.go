// Package session ties a vertex set, its minimum spanning tree and an
// animator together into one run.
//
// A [Session] is what the presentation layer talks to. It owns the animator,
// routes every playback [animator.Command] through [Session.Dispatch], and
// reports run events to the hooks registered in
// [github.com/derian-c/MATH478-FinalProject/pkg/observability].
//
// # Sources
//
// A session is created either from random points ([NewRandom]) or from a
// fixed point set ([NewFromPoints]). Only random sessions can honour the
// Restart command: it draws a fresh vertex set from the session's random
// stream and starts a new run with a new ID. File sessions answer Restart
// with [ErrFixedVertices].
//
// # Clock
//
// The session does not own a clock. The host calls [Session.Tick] once per
// frame and draws the returned snapshot.
//
//	s, err := session.NewRandom(ctx, session.Options{Vertices: 25, FramesPerEdge: 30, Pane: pane})
//	for range ticker.C {
//	    snap := s.Tick(ctx)
//	    draw(snap, s.Vertices)
//	}
//
// Sessions are not safe for concurrent use.
package session
