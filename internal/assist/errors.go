package assist

import (
	"errors"
	"fmt"
)

// Collaborator names used in logs and metrics labels.
const (
	CollabBrain   = "brain"
	CollabVision  = "vision"
	CollabSearch  = "search"
	CollabDesktop = "desktop"
)

// CollaboratorError wraps a failure from an external collaborator. Timeout
// marks failures eligible for the one-shot search/knowledge fallback.
type CollaboratorError struct {
	Collaborator string
	Timeout      bool
	Err          error
}

func (e *CollaboratorError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s timed out: %v", e.Collaborator, e.Err)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Code is the metrics label for this failure.
func (e *CollaboratorError) Code() string {
	if e.Timeout {
		return "timeout"
	}
	return "unavailable"
}

// ErrStaleContext reports a follow-up that referenced vision or search
// context which has expired. The assistant asks the user to repeat instead
// of guessing.
var ErrStaleContext = errors.New("referenced context has expired")
