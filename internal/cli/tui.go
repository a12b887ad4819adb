package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/render/term"
	"github.com/derian-c/MATH478-FinalProject/pkg/session"
)

// Player layout
const (
	playerHeaderLines = 2
	playerFooterLines = 2
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

var (
	playerStateStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	playerPauseStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	playerStatStyle  = lipgloss.NewStyle().Foreground(colorGray)
	playerErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
	playerHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Key Bindings
// =============================================================================

type playerKeyMap struct {
	Pause  key.Binding
	New    key.Binding
	Start  key.Binding
	End    key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var playerKeys = playerKeyMap{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new graph"),
	),
	Start: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "restart"),
	),
	End: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "skip to end"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k playerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.New, k.Start, k.End, k.Help, k.Quit}
}

func (k playerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Start, k.End},
		{k.New, k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

// commandFor maps a key press to a playback command.
func (k playerKeyMap) commandFor(msg tea.KeyMsg) (animator.Command, bool) {
	switch {
	case key.Matches(msg, k.Pause):
		return animator.TogglePause, true
	case key.Matches(msg, k.New):
		return animator.Restart, true
	case key.Matches(msg, k.Start):
		return animator.JumpToStart, true
	case key.Matches(msg, k.End):
		return animator.JumpToEnd, true
	}
	return 0, false
}

// binding returns the binding that issues cmd.
func (k *playerKeyMap) binding(cmd animator.Command) *key.Binding {
	switch cmd {
	case animator.TogglePause:
		return &k.Pause
	case animator.Restart:
		return &k.New
	case animator.JumpToStart:
		return &k.Start
	case animator.JumpToEnd:
		return &k.End
	}
	return nil
}

// rebind returns a copy of k with the commands named in keys moved to new
// keys. "space" names the space bar. A key may drive one binding only.
func (k playerKeyMap) rebind(keys map[string]string) (playerKeyMap, error) {
	for name, keyName := range keys {
		cmd, err := animator.ParseCommand(name)
		if err != nil {
			return k, errors.New(errors.ErrCodeInvalidConfig, "Keys: %v", err)
		}
		b := k.binding(cmd)
		pressed := keyName
		if pressed == "space" {
			pressed = " "
		}
		b.SetKeys(pressed)
		b.SetHelp(keyName, b.Help().Desc)
	}

	owner := make(map[string]string)
	for _, b := range []key.Binding{k.Pause, k.New, k.Start, k.End, k.Faster, k.Slower, k.Help, k.Quit} {
		for _, pressed := range b.Keys() {
			if other, ok := owner[pressed]; ok {
				return k, errors.New(errors.ErrCodeInvalidConfig, "Keys: %q is bound to both %s and %s", pressed, other, b.Help().Desc)
			}
			owner[pressed] = b.Help().Desc
		}
	}
	return k, nil
}

// =============================================================================
// PlayerModel - Interactive animation
// =============================================================================

type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// PlayerModel is the bubbletea model that animates a session.
type PlayerModel struct {
	ctx      context.Context
	sess     *session.Session
	keys     playerKeyMap
	help     help.Model
	canvas   *term.Canvas
	styles   term.Styles
	interval time.Duration
	snap     animator.Snapshot
	status   string
	width    int
	height   int
}

// NewPlayerModel creates a player for s ticking tickRate times per second.
func NewPlayerModel(ctx context.Context, s *session.Session, tickRate int) PlayerModel {
	m := PlayerModel{
		ctx:      ctx,
		sess:     s,
		keys:     playerKeys,
		help:     help.New(),
		styles:   term.DefaultStyles(),
		interval: time.Second / time.Duration(max(tickRate, 1)),
		snap:     s.Snapshot(),
	}
	m.resize(defaultTermWidth, defaultTermHeight)
	return m
}

// WithKeys rebinds playback commands as described by config.Config.Keys.
func (m PlayerModel) WithKeys(keys map[string]string) (PlayerModel, error) {
	km, err := m.keys.rebind(keys)
	if err != nil {
		return m, err
	}
	m.keys = km
	return m, nil
}

func (m *PlayerModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.canvas = term.NewCanvas(w, max(h-playerHeaderLines-playerFooterLines, 1))
}

func (m PlayerModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tickMsg:
		m.snap = m.sess.Tick(m.ctx)
		return m, tick(m.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Faster):
			m.setStatus(m.sess.Speed(-speedStep(m.sess.FramesPerEdge())))
		case key.Matches(msg, m.keys.Slower):
			m.setStatus(m.sess.Speed(speedStep(m.sess.FramesPerEdge())))
		default:
			if cmd, ok := m.keys.commandFor(msg); ok {
				m.setStatus(m.sess.Dispatch(m.ctx, cmd))
			}
		}
		m.snap = m.sess.Snapshot()
	}
	return m, nil
}

// speedStep is the frames-per-edge change of one speed key press, about a
// fifth of the current value.
func speedStep(fpe int) int {
	return max(1, fpe/5)
}

func (m *PlayerModel) setStatus(err error) {
	switch {
	case err == nil:
		m.status = ""
	case stderrors.Is(err, session.ErrFixedVertices):
		m.status = "vertices come from a file; use q to replay"
	default:
		m.status = errors.UserMessage(errors.Classify(err))
	}
}

func (m PlayerModel) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.progressLine())
	b.WriteString("\n")

	m.canvas.Draw(m.snap, m.sess.Vertices, m.sess.Pane())
	b.WriteString(m.canvas.Render(m.styles))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(playerErrStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(playerHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m PlayerModel) header() string {
	state := playerStateStyle.Render(m.snap.State.String())
	if m.snap.State == animator.Paused {
		state = playerPauseStyle.Render(m.snap.State.String())
	}
	stats := fmt.Sprintf("%d vertices · %d frames/edge · run %s",
		len(m.sess.Vertices), m.sess.FramesPerEdge(), m.sess.ID.String()[:8])
	return StyleTitle.Render("Kruskal MST") + "  " + state + "  " + playerStatStyle.Render(stats)
}

func (m PlayerModel) progressLine() string {
	line := fmt.Sprintf("edge %d/%d  weight %.2f/%.2f  %3.0f%%",
		m.snap.Cursor, m.snap.Total, m.snap.DrawnWeight(), m.sess.Result.TotalWeight, 100*m.snap.Fraction())
	if p := m.snap.Current; p != nil {
		line += fmt.Sprintf("  drawing %d-%d", p.Edge.U, p.Edge.V)
	}
	return playerStatStyle.Render(line)
}
