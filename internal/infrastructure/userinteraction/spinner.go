package userinteraction

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ThinkingMessage is shown while a question is processed.
const ThinkingMessage = "Thinking..."

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line while a question is processed. Writes made
// through it clear the status line first, so trace output and the animation
// do not interleave.
type Spinner struct {
	out      io.Writer
	message  string
	interval time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{out: out, message: message, interval: 100 * time.Millisecond}
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	s.clearLine()
	s.mu.Unlock()
}

// Write implements io.Writer.
func (s *Spinner) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.clearLine()
	}
	return s.out.Write(p)
}

func (s *Spinner) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	magenta := color.New(color.FgMagenta)
	for frame := 0; ; frame++ {
		s.mu.Lock()
		fmt.Fprintf(s.out, "\r%s %s", magenta.Sprint(spinnerFrames[frame%len(spinnerFrames)]), s.message)
		s.mu.Unlock()

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) clearLine() {
	fmt.Fprint(s.out, "\r\033[K")
}
