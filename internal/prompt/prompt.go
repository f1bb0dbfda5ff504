// Package prompt provides the interactive prompting capability used when a
// workflow runs in interactive mode. The terminal implementation is backed
// by huh; tests use the canned Static double.
package prompt

import "errors"

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks the operator for input. Implementations block until an
// answer is given or the prompt is aborted.
type Prompter interface {
	// Choose presents options and returns the selected one. def, when
	// among the options, is preselected.
	Choose(title string, options []string, def string) (string, error)

	// Input asks for a free-form value, offering def as the initial text.
	Input(title, def string) (string, error)
}

// Compile-time check that Static implements Prompter.
var _ Prompter = (*Static)(nil)

// Static is a non-interactive Prompter returning canned answers in order.
// Once the answers run out it returns ErrCancelled, which surfaces missing
// test fixtures instead of hanging.
type Static struct {
	Answers []string

	next int
}

func (s *Static) Choose(string, []string, string) (string, error) {
	return s.answer()
}

func (s *Static) Input(string, string) (string, error) {
	return s.answer()
}

func (s *Static) answer() (string, error) {
	if s.next >= len(s.Answers) {
		return "", ErrCancelled
	}
	a := s.Answers[s.next]
	s.next++
	return a, nil
}
