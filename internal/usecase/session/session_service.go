package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/domain/repositories"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
)

// Default question count bounds applied to incoming settings
const (
	DefaultMinQuestions = 3
	DefaultMaxQuestions = 10
)

// Config holds the optional collaborators and limits of a SessionService
type Config struct {
	MinQuestions int
	MaxQuestions int
	Events       EventPublisher
	Archiver     ReportArchiver
	Clock        Clock
	Logger       *zap.Logger
}

// SessionService runs sessions for many users. Every operation loads the session,
// applies one controller operation under a per-session lock and saves it back.
type SessionService struct {
	repo     repositories.SessionRepository
	selector QuestionSelector
	scorer   scoring.Provider
	events   EventPublisher
	archiver ReportArchiver
	minQ     int
	maxQ     int
	now      Clock
	logger   *zap.Logger
	locks    *keyedMutex
}

// NewSessionService creates a new session service
func NewSessionService(
	repo repositories.SessionRepository,
	selector QuestionSelector,
	scorer scoring.Provider,
	cfg Config,
) *SessionService {
	if cfg.MinQuestions <= 0 {
		cfg.MinQuestions = DefaultMinQuestions
	}
	if cfg.MaxQuestions < cfg.MinQuestions {
		cfg.MaxQuestions = DefaultMaxQuestions
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &SessionService{
		repo:     repo,
		selector: selector,
		scorer:   scorer,
		events:   cfg.Events,
		archiver: cfg.Archiver,
		minQ:     cfg.MinQuestions,
		maxQ:     cfg.MaxQuestions,
		now:      cfg.Clock,
		logger:   cfg.Logger,
		locks:    newKeyedMutex(),
	}
}

// Start validates and clamps the settings, selects questions and stores the new session
func (s *SessionService) Start(ctx context.Context, userID string, settings entities.InterviewSettings) (*entities.Session, error) {
	settings = settings.Clamp(s.minQ, s.maxQ)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidSettings, err)
	}

	session := entities.NewSession(strings.TrimSpace(userID))
	ctrl := s.controller(session)
	if err := ctrl.Start(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	metrics.RecordSessionStarted(string(settings.Category), string(settings.Difficulty))
	s.publish(ctx, session, entities.EventSessionStarted, nil)

	return session.Clone(), nil
}

// Get retrieves a session snapshot by ID
func (s *SessionService) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	return s.load(ctx, sessionID)
}

// CurrentQuestion returns the question awaiting an answer
func (s *SessionService) CurrentQuestion(ctx context.Context, sessionID string) (*entities.Question, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, err := s.controller(session).CurrentQuestion()
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Submit records an answer, awaits the scorer and advances the session
func (s *SessionService) Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error) {
	unlock := s.locks.Lock(input.SessionID)
	defer unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	ctrl := s.controller(session)
	if input.QuestionID != "" {
		q, err := ctrl.CurrentQuestion()
		if err != nil {
			return nil, err
		}
		if q.ID != input.QuestionID {
			return nil, fmt.Errorf("%w: %s, current is %s", usecaseErrors.ErrQuestionMismatch, input.QuestionID, q.ID)
		}
	}

	confidence := input.Confidence
	if confidence == 0 {
		confidence = entities.DefaultConfidence
	}

	res, err := ctrl.SubmitResponseWithConfidence(ctx, input.Answer, confidence)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	out := &SubmitOutput{
		Session:   session.Clone(),
		Score:     res.Score,
		Completed: res.Completed,
	}

	if res.Response.ID == "" {
		// blank answer, handled as a skip
		metrics.RecordResponse(metrics.OutcomeSkipped)
	} else {
		response := res.Response
		out.Response = &response
		outcome := metrics.OutcomeUnscored
		if response.Scored {
			outcome = metrics.OutcomeScored
		}
		metrics.RecordResponse(outcome)
		s.publish(ctx, session, entities.EventResponseRecorded, &response)
	}

	if res.Completed {
		s.complete(ctx, session)
	}
	return out, nil
}

// Skip moves past the current question without recording a response
func (s *SessionService) Skip(ctx context.Context, sessionID string) (*entities.Session, error) {
	return s.mutate(ctx, sessionID, func(c *Controller) error {
		if err := c.SkipCurrent(); err != nil {
			return err
		}
		metrics.RecordResponse(metrics.OutcomeSkipped)
		return nil
	})
}

// Pause pauses an in-progress session
func (s *SessionService) Pause(ctx context.Context, sessionID string) (*entities.Session, error) {
	return s.mutate(ctx, sessionID, func(c *Controller) error { return c.Pause() })
}

// Resume resumes a paused session
func (s *SessionService) Resume(ctx context.Context, sessionID string) (*entities.Session, error) {
	return s.mutate(ctx, sessionID, func(c *Controller) error { return c.Resume() })
}

// Summary returns the final report of a completed session
func (s *SessionService) Summary(ctx context.Context, sessionID string) (*entities.SessionSummary, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Summarize(session)
}

// Dashboard aggregates one user's completed sessions
func (s *SessionService) Dashboard(ctx context.Context, userID string) (*entities.Dashboard, error) {
	sessions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return BuildDashboard(userID, sessions), nil
}

// mutate applies fn to the stored session under its lock and saves the result
func (s *SessionService) mutate(ctx context.Context, sessionID string, fn func(*Controller) error) (*entities.Session, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wasCompleted := session.IsCompleted()
	if err := fn(s.controller(session)); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if !wasCompleted && session.IsCompleted() {
		s.complete(ctx, session)
	}
	return session.Clone(), nil
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*entities.Session, error) {
	session, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

func (s *SessionService) controller(session *entities.Session) *Controller {
	return NewController(session, s.selector, s.scorer,
		WithClock(s.now),
		WithLogger(s.logger),
	)
}

// complete runs the side effects of a finished session. Failures are logged only.
func (s *SessionService) complete(ctx context.Context, session *entities.Session) {
	summary, err := Summarize(session)
	if err != nil {
		s.logger.Error("failed to summarize completed session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		return
	}

	metrics.RecordSessionCompleted(string(session.Settings.Category), summary.AverageScore)
	s.publish(ctx, session, entities.EventSessionCompleted, nil)

	if s.archiver != nil {
		if err := s.archiver.ArchiveReport(ctx, session, summary); err != nil {
			s.logger.Warn("failed to archive session report",
				zap.String("session_id", session.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *SessionService) publish(ctx context.Context, session *entities.Session, typ entities.SessionEventType, response *entities.InterviewResponse) {
	if s.events == nil {
		return
	}

	event := entities.SessionEvent{
		Type:         typ,
		SessionID:    session.ID,
		UserID:       session.UserID,
		Category:     session.Settings.Category,
		Difficulty:   session.Settings.Difficulty,
		RunningScore: session.RunningScore,
		OccurredAt:   s.now(),
	}
	if response != nil {
		event.QuestionID = response.QuestionID
		event.Scored = response.Scored
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish session event",
			zap.String("session_id", session.ID),
			zap.String("event", string(typ)),
			zap.Error(err),
		)
	}
}
