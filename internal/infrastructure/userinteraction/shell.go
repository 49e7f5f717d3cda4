package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"agentoid/internal/application/port/input"
	"agentoid/internal/domain/entity"

	"github.com/fatih/color"
)

// Shell is the line-based console front-end: each line read is one
// independent question.
type Shell struct {
	asker   input.Asker
	in      io.Reader
	out     io.Writer
	spinner *Spinner
	render  func(string) (string, error)
}

type ShellOption func(*Shell)

// WithSpinner animates sp while the agent runs. Trace output meant for the
// console should be written through sp so it does not tear the animation.
func WithSpinner(sp *Spinner) ShellOption {
	return func(s *Shell) {
		s.spinner = sp
	}
}

func WithRenderer(render func(string) (string, error)) ShellOption {
	return func(s *Shell) {
		s.render = render
	}
}

func NewShell(asker input.Asker, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		asker:  asker,
		in:     in,
		out:    out,
		render: plainText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads questions until EOF or until ctx is cancelled. Cancellation also
// interrupts a prompt that is waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(s.out, "🤖 Agentoid")
	fmt.Fprintln(s.out, "Your AI-powered assistant for solving math, AI enhanced searching and more!")

	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.readLines(ctx, lines, readErr)

	for {
		fmt.Fprint(s.out, "\nYour question: ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read question: %w", err)
				}
				return nil
			}
			s.handle(ctx, line)
		}
	}
}

// readLines feeds lines until EOF. A read blocked on the terminal is left
// behind when ctx is cancelled; the process is exiting by then.
func (s *Shell) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	readErr <- scanner.Err()
}

func (s *Shell) handle(ctx context.Context, question string) {
	if s.spinner != nil && strings.TrimSpace(question) != "" {
		s.spinner.Start()
	}
	resp, err := s.asker.Ask(ctx, question)
	if s.spinner != nil {
		s.spinner.Stop()
	}

	if err != nil {
		s.showError(err)
		return
	}

	heading := color.New(color.Bold)
	heading.Fprintln(s.out, "\nResponse:")

	rendered, renderErr := s.render(resp.Output)
	if renderErr != nil {
		rendered = resp.Output + "\n"
	}
	fmt.Fprint(s.out, rendered)
}

func (s *Shell) showError(err error) {
	var inputErr *entity.UserInputError
	if errors.As(err, &inputErr) {
		color.New(color.FgYellow).Fprintln(s.out, inputErr.Reason)
		return
	}
	color.New(color.FgRed).Fprintf(s.out, "Error processing your request %v\n", err)
}
