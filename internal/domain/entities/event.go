package entities

import "time"

// SessionEventType names a session lifecycle event
type SessionEventType string

const (
	EventSessionStarted   SessionEventType = "session.started"
	EventResponseRecorded SessionEventType = "session.response_recorded"
	EventSessionCompleted SessionEventType = "session.completed"
)

// SessionEvent is published when a session changes in a way other systems care about
type SessionEvent struct {
	Type         SessionEventType `json:"type"`
	SessionID    string           `json:"session_id"`
	UserID       string           `json:"user_id,omitempty"`
	Category     QuestionCategory `json:"category"`
	Difficulty   Difficulty       `json:"difficulty"`
	QuestionID   string           `json:"question_id,omitempty"`
	Scored       bool             `json:"scored,omitempty"`
	RunningScore float64          `json:"running_score"`
	OccurredAt   time.Time        `json:"occurred_at"`
}
