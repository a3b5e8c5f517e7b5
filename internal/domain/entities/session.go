package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents where a session is in its lifecycle
type SessionStatus string

const (
	SessionStatusNotStarted SessionStatus = "not-started"
	SessionStatusInProgress SessionStatus = "in-progress"
	SessionStatusPaused     SessionStatus = "paused"
	SessionStatusCompleted  SessionStatus = "completed"
)

// Session represents one interview practice run
type Session struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id,omitempty"`
	Title             string              `json:"title"`
	Settings          InterviewSettings   `json:"settings"`
	Questions         []Question          `json:"questions"`
	Responses         []InterviewResponse `json:"responses"`
	Scores            []ScoreResult       `json:"scores"`
	RawScores         []int               `json:"raw_scores"`
	RunningScore      float64             `json:"running_score"`
	CurrentIndex      int                 `json:"current_index"`
	Status            SessionStatus       `json:"status"`
	StartedAt         time.Time           `json:"started_at"`
	QuestionStartedAt time.Time           `json:"question_started_at"`
	PausedAt          *time.Time          `json:"paused_at,omitempty"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
}

// NewSession creates a session that has not been started yet
func NewSession(userID string) *Session {
	return &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Status: SessionStatusNotStarted,
	}
}

// IsInProgress checks if the session accepts answers
func (s *Session) IsInProgress() bool {
	return s.Status == SessionStatusInProgress
}

// IsPaused checks if the session is paused
func (s *Session) IsPaused() bool {
	return s.Status == SessionStatusPaused
}

// IsCompleted checks if every question has been answered or skipped
func (s *Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// CurrentQuestion returns the question at CurrentIndex, if any
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// ScoredCount returns how many responses received a score
func (s *Session) ScoredCount() int {
	return len(s.RawScores)
}

// SkippedCount returns how many questions were passed without a response
func (s *Session) SkippedCount() int {
	return s.CurrentIndex - len(s.Responses)
}

// Progress returns the share of questions already passed, in percent
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.CurrentIndex) / float64(len(s.Questions)) * 100
}

// Clone returns a deep copy so callers cannot mutate the owner's state
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Questions = append([]Question(nil), s.Questions...)
	c.Responses = append([]InterviewResponse(nil), s.Responses...)
	c.RawScores = append([]int(nil), s.RawScores...)
	c.Scores = make([]ScoreResult, len(s.Scores))
	for i, sc := range s.Scores {
		sc.Suggestions = append([]string(nil), sc.Suggestions...)
		c.Scores[i] = sc
	}
	if s.PausedAt != nil {
		t := *s.PausedAt
		c.PausedAt = &t
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
