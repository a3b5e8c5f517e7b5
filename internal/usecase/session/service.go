package session

import (
	"context"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// Service defines the interface for the session use case
type Service interface {
	// Start creates and starts a new session for the user
	Start(ctx context.Context, userID string, settings entities.InterviewSettings) (*entities.Session, error)

	// Get retrieves a session snapshot by ID
	Get(ctx context.Context, sessionID string) (*entities.Session, error)

	// CurrentQuestion returns the question awaiting an answer
	CurrentQuestion(ctx context.Context, sessionID string) (*entities.Question, error)

	// Submit records an answer and scores it
	Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error)

	// Skip moves past the current question
	Skip(ctx context.Context, sessionID string) (*entities.Session, error)

	// Pause pauses an in-progress session
	Pause(ctx context.Context, sessionID string) (*entities.Session, error)

	// Resume resumes a paused session
	Resume(ctx context.Context, sessionID string) (*entities.Session, error)

	// Summary returns the final report of a completed session
	Summary(ctx context.Context, sessionID string) (*entities.SessionSummary, error)

	// Dashboard aggregates one user's completed sessions
	Dashboard(ctx context.Context, userID string) (*entities.Dashboard, error)
}

// Ensure SessionService implements Service interface
var _ Service = (*SessionService)(nil)

// SubmitInput represents input for submitting an answer.
// A non-empty QuestionID must still be the current question when the answer is recorded.
type SubmitInput struct {
	SessionID  string
	QuestionID string
	Answer     string
	Confidence int
}

// SubmitOutput represents the outcome of a submitted answer
type SubmitOutput struct {
	Session   *entities.Session
	Response  *entities.InterviewResponse
	Score     *entities.ScoreResult
	Completed bool
}

// EventPublisher publishes session lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, event entities.SessionEvent) error
}

// ReportArchiver stores the final report of a completed session
type ReportArchiver interface {
	ArchiveReport(ctx context.Context, session *entities.Session, summary *entities.SessionSummary) error
}
