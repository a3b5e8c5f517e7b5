package errors

import (
	"errors"
	"fmt"
)

// Session errors
var (
	ErrEmptySession       = errors.New("no questions could be selected for the session")
	ErrNoCurrentQuestion  = errors.New("session has no current question")
	ErrIncompleteSession  = errors.New("session is not completed")
	ErrInvalidTransition  = errors.New("invalid session state transition")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSettings    = errors.New("invalid interview settings")
	ErrSessionAlreadyUsed = errors.New("session already started")
	ErrQuestionMismatch   = errors.New("question is no longer current")
)

// Scoring errors
var (
	ErrScoringUnavailable = errors.New("scoring unavailable")
)

// Transcription errors
var (
	ErrEmptyAudio = errors.New("audio payload is empty")
)

// Storage errors, wrapped by the session repositories
var (
	ErrDatabase = errors.New("database failure")
	ErrCache    = errors.New("cache failure")
)

// StateError is an operation refused because of the session's current status.
// It unwraps to one of the session sentinels above.
type StateError struct {
	Err       error
	SessionID string
	Status    string
}

// NewStateError wraps err with the session id and status it was refused in
func NewStateError(err error, sessionID, status string) *StateError {
	return &StateError{Err: err, SessionID: sessionID, Status: status}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v: session %s is %s", e.Err, e.SessionID, e.Status)
}

func (e *StateError) Unwrap() error {
	return e.Err
}
