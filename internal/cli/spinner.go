package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner shows a one-line progress indicator on a writer while a blocking
// call runs. It stops on Stop or when its context ends.
type Spinner struct {
	message string
	out     io.Writer
	style   spinner.Spinner
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	started bool
	once    sync.Once
	mu      sync.Mutex
	width   int // widest line written, for clearing
}

// newSpinner creates a spinner on stderr.
func newSpinner(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

// newSpinnerTo creates a spinner writing to out.
func newSpinnerTo(ctx context.Context, out io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		out:     out,
		style:   spinner.MiniDot,
		parent:  ctx,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. It must be called at most once.
func (s *Spinner) Start() {
	s.started = true
	start := time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.style.FPS)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				frame := s.style.Frames[i%len(s.style.Frames)]
				elapsed := time.Since(start).Truncate(100 * time.Millisecond)
				s.draw(styleIconSpinner.Render(frame) + " " + StyleDim.Render(fmt.Sprintf("%s %s", s.message, elapsed)))
			}
		}
	}()
}

func (s *Spinner) draw(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = max(s.width, len(line))
	fmt.Fprintf(s.out, "\r%s", line)
}

// Stop ends the animation and clears the line. Extra calls do nothing.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		if s.started {
			<-s.stopped
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context the spinner was created with has
// ended.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

// withSpinner runs fn while s animates. On failure it prints failure, unless
// the spinner's context ended, in which case that context's error is
// returned instead of fn's.
func withSpinner(s *Spinner, failure string, fn func() error) error {
	s.Start()
	err := fn()
	switch {
	case err == nil:
		s.Stop()
	case s.Cancelled():
		s.Stop()
		return s.parent.Err()
	default:
		s.StopWithError(failure)
	}
	return err
}
