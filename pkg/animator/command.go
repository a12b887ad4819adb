package animator

import (
	"fmt"
	"strings"
)

// Command is a playback control request, independent of the input device
// that produced it.
type Command int

const (
	// TogglePause pauses or resumes playback.
	TogglePause Command = iota
	// Restart asks for a new random vertex set. The animator cannot honour it
	// alone; see [Animator.Apply].
	Restart
	// JumpToStart rewinds to the first edge, keeping the vertex set.
	JumpToStart
	// JumpToEnd draws every edge immediately.
	JumpToEnd
)

var commandNames = [...]string{
	TogglePause: "toggle-pause",
	Restart:     "restart",
	JumpToStart: "jump-to-start",
	JumpToEnd:   "jump-to-end",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand maps a command name as produced by [Command.String] back to
// the command. Matching ignores case.
func ParseCommand(s string) (Command, error) {
	for c, name := range commandNames {
		if strings.EqualFold(s, name) {
			return Command(c), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}

// Apply executes cmd and reports whether it was handled. Restart is never
// handled here because it needs a fresh edge list.
func (a *Animator) Apply(cmd Command) bool {
	switch cmd {
	case TogglePause:
		a.TogglePause()
	case JumpToStart:
		a.Restart()
	case JumpToEnd:
		a.SkipToEnd()
	default:
		return false
	}
	return true
}
