package git

import (
	"errors"
	"strings"
)

// ErrDiverged indicates a local ref and its remote counterpart have both
// moved since they last agreed. The workflow refuses to operate on a
// diverged branch; reconciling is left to the operator.
var ErrDiverged = errors.New("local and remote branches have diverged")

// CommandError wraps a failed git invocation with the raw diagnostic output
// the tool produced.
type CommandError struct {
	Op     string   // operation that failed, e.g. "merge", "push"
	Args   []string // git arguments that were run
	Output string   // combined stdout/stderr
	Err    error    // underlying error
}

func (e *CommandError) Error() string {
	msg := "git " + e.Op
	if e.Output != "" {
		return msg + ": " + strings.TrimSpace(e.Output)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + " failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
