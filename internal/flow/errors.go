package flow

import (
	"errors"
	"fmt"
)

// ErrUncommittedChanges aborts any action before its first mutating step
// when the working tree is dirty.
var ErrUncommittedChanges = errors.New("you have some uncommitted files; commit or discard them first")

// ResolutionError indicates the target branch or tag of an action could not
// be determined, or failed its existence precondition. It is always raised
// before any mutating command runs.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string {
	return e.Reason
}

func resolutionErrorf(format string, args ...any) *ResolutionError {
	return &ResolutionError{Reason: fmt.Sprintf(format, args...)}
}
