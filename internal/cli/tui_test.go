package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/session"
)

func newTestPlayer(t *testing.T) PlayerModel {
	t.Helper()
	s, err := session.NewRandom(context.Background(), session.Options{
		Vertices:      6,
		FramesPerEdge: 10,
		Pane:          geom.Size{W: 100, H: 100},
		Seed:          1,
	})
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	return NewPlayerModel(context.Background(), s, 60)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m PlayerModel, msg tea.Msg) (PlayerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PlayerModel)
	if !ok {
		t.Fatalf("Update returned %T, want PlayerModel", next)
	}
	return pm, cmd
}

func TestPlayerTick(t *testing.T) {
	m := newTestPlayer(t)

	m, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.snap.Current == nil {
		t.Fatal("first edge should be in progress after one tick")
	}
	if m.snap.Current.Alpha != 0.1 {
		t.Errorf("alpha = %v, want 0.1", m.snap.Current.Alpha)
	}
}

func TestPlayerKeys(t *testing.T) {
	m := newTestPlayer(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.snap.State != animator.Paused {
		t.Errorf("after space: state = %v, want paused", m.snap.State)
	}

	m, _ = update(t, m, runeKey('e'))
	if m.snap.State != animator.Complete {
		t.Errorf("after e: state = %v, want complete", m.snap.State)
	}
	if m.snap.Cursor != m.snap.Total {
		t.Errorf("after e: cursor = %d, want %d", m.snap.Cursor, m.snap.Total)
	}

	m, _ = update(t, m, runeKey('q'))
	if m.snap.State != animator.Playing || m.snap.Cursor != 0 {
		t.Errorf("after q: state = %v cursor = %d, want playing at 0", m.snap.State, m.snap.Cursor)
	}

	before := m.sess.ID
	m, _ = update(t, m, runeKey('n'))
	if m.sess.ID == before {
		t.Error("n should start a new run")
	}
	if m.status != "" {
		t.Errorf("status = %q, want empty", m.status)
	}
}

func TestPlayerSpeedKeys(t *testing.T) {
	m := newTestPlayer(t)

	m, _ = update(t, m, runeKey('+'))
	if got := m.sess.FramesPerEdge(); got != 8 {
		t.Errorf("after +: frames per edge = %d, want 8", got)
	}
	m, _ = update(t, m, runeKey('-'))
	if got := m.sess.FramesPerEdge(); got != 9 {
		t.Errorf("after -: frames per edge = %d, want 9", got)
	}
}

func TestPlayerSlowDownStopsAtMax(t *testing.T) {
	m := newTestPlayer(t)

	for range 300 {
		m, _ = update(t, m, runeKey('-'))
	}
	if got := m.sess.FramesPerEdge(); got != animator.MaxFramesPerEdge {
		t.Errorf("frames per edge = %d, want %d", got, animator.MaxFramesPerEdge)
	}
	if m.status != "" {
		t.Errorf("status = %q, want empty", m.status)
	}
	m, _ = update(t, m, tickMsg(time.Now()))
	if cur := m.snap.Current; cur == nil || cur.Alpha < 0 || cur.Alpha >= 1 {
		t.Errorf("current edge = %+v, want alpha in [0, 1)", cur)
	}
}

func TestPlayerWithKeys(t *testing.T) {
	m, err := newTestPlayer(t).WithKeys(map[string]string{
		"jump-to-end":  "x",
		"Toggle-Pause": "p",
		"restart":      "space",
	})
	if err != nil {
		t.Fatalf("WithKeys: %v", err)
	}

	m, _ = update(t, m, runeKey('e'))
	if m.snap.State != animator.Playing {
		t.Errorf("after e: state = %v, want playing", m.snap.State)
	}
	m, _ = update(t, m, runeKey('p'))
	if m.snap.State != animator.Paused {
		t.Errorf("after p: state = %v, want paused", m.snap.State)
	}
	m, _ = update(t, m, runeKey('x'))
	if m.snap.State != animator.Complete {
		t.Errorf("after x: state = %v, want complete", m.snap.State)
	}

	before := m.sess.ID
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.sess.ID == before {
		t.Error("space should start a new run")
	}
	if help := m.help.View(m.keys); !strings.Contains(help, "space") || !strings.Contains(help, "x") {
		t.Errorf("help should show the new keys, got %q", help)
	}

	if _, ok := playerKeys.commandFor(runeKey('e')); !ok {
		t.Error("rebinding must not change the default key map")
	}
}

func TestPlayerWithKeysErrors(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
	}{
		{"UnknownCommand", map[string]string{"rewind": "r"}},
		{"TakenByCommand", map[string]string{"restart": "e"}},
		{"TakenBySpeed", map[string]string{"jump-to-start": "+"}},
		{"TakenByQuit", map[string]string{"toggle-pause": "esc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestPlayer(t).WithKeys(tt.keys)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("WithKeys(%v) error = %v, want INVALID_CONFIG", tt.keys, err)
			}
		})
	}
}

func TestSpeedStep(t *testing.T) {
	tests := []struct {
		fpe, want int
	}{
		{1, 1},
		{4, 1},
		{10, 2},
		{30, 6},
	}
	for _, tt := range tests {
		if got := speedStep(tt.fpe); got != tt.want {
			t.Errorf("speedStep(%d) = %d, want %d", tt.fpe, got, tt.want)
		}
	}
}

func TestPlayerRegenerateFileSession(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	s, err := session.NewFromPoints(context.Background(), points, session.Options{
		FramesPerEdge: 5,
		Pane:          geom.Size{W: 10, H: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := NewPlayerModel(context.Background(), s, 30)

	m, _ = update(t, m, runeKey('n'))
	if !strings.Contains(m.status, "file") {
		t.Errorf("status = %q, want a file-source message", m.status)
	}

	m, _ = update(t, m, runeKey('e'))
	if m.status != "" {
		t.Errorf("status should clear after a successful command, got %q", m.status)
	}
}

func TestPlayerHelpAndQuit(t *testing.T) {
	m := newTestPlayer(t)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}

func TestPlayerResize(t *testing.T) {
	m := newTestPlayer(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.canvas.Width() != 40 {
		t.Errorf("canvas width = %d, want 40", m.canvas.Width())
	}
	if want := 20 - playerHeaderLines - playerFooterLines; m.canvas.Height() != want {
		t.Errorf("canvas height = %d, want %d", m.canvas.Height(), want)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 2})
	if m.canvas.Height() != 1 {
		t.Errorf("tiny window: canvas height = %d, want 1", m.canvas.Height())
	}
}

func TestPlayerView(t *testing.T) {
	m := newTestPlayer(t)
	m, _ = update(t, m, tickMsg(time.Now()))

	view := m.View()
	for _, want := range []string{"Kruskal MST", "playing", "edge 0/5", "drawing"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
