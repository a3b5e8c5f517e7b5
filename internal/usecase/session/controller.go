package session

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
)

// QuestionSelector produces the ordered question list for new settings
type QuestionSelector interface {
	Select(settings entities.InterviewSettings) []entities.Question
}

// Clock returns the current time
type Clock func() time.Time

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the wall clock used for durations and timestamps
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.now = clock
		}
	}
}

// WithLogger sets the controller logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// SubmitResult describes what happened to one submitted answer
type SubmitResult struct {
	Response  entities.InterviewResponse
	Score     *entities.ScoreResult
	Completed bool
}

// Controller drives one session through its state machine.
// It is the only writer of the session it owns and is not safe for concurrent use.
type Controller struct {
	session  *entities.Session
	selector QuestionSelector
	scorer   scoring.Provider
	now      Clock
	logger   *zap.Logger
}

// NewController wraps session. A nil session starts a fresh anonymous one.
func NewController(session *entities.Session, selector QuestionSelector, scorer scoring.Provider, opts ...Option) *Controller {
	if session == nil {
		session = entities.NewSession("")
	}
	c := &Controller{
		session:  session,
		selector: selector,
		scorer:   scorer,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start selects questions and moves the session to in-progress
func (c *Controller) Start(ctx context.Context, settings entities.InterviewSettings) error {
	if c.session.Status != entities.SessionStatusNotStarted {
		return usecaseErrors.NewStateError(usecaseErrors.ErrSessionAlreadyUsed, c.session.ID, string(c.session.Status))
	}

	questions := c.selector.Select(settings)
	if len(questions) == 0 {
		return fmt.Errorf("%w: category=%s difficulty=%s", usecaseErrors.ErrEmptySession, settings.Category, settings.Difficulty)
	}

	now := c.now()
	s := c.session
	s.Title = settings.Title()
	s.Settings = settings
	s.Questions = questions
	s.Responses = []entities.InterviewResponse{}
	s.Scores = []entities.ScoreResult{}
	s.RawScores = []int{}
	s.RunningScore = 0
	s.CurrentIndex = 0
	s.Status = entities.SessionStatusInProgress
	s.StartedAt = now
	s.QuestionStartedAt = now

	c.logger.Info("session started",
		zap.String("session_id", s.ID),
		zap.String("category", string(settings.Category)),
		zap.String("difficulty", string(settings.Difficulty)),
		zap.Int("requested", settings.QuestionCount),
		zap.Int("selected", len(questions)),
	)
	return nil
}

// CurrentQuestion returns the question awaiting an answer
func (c *Controller) CurrentQuestion() (entities.Question, error) {
	if !c.session.IsInProgress() {
		return entities.Question{}, c.noCurrentQuestion()
	}
	q, ok := c.session.CurrentQuestion()
	if !ok {
		return entities.Question{}, c.noCurrentQuestion()
	}
	return q, nil
}

// SubmitResponse records an answer with the default confidence
func (c *Controller) SubmitResponse(ctx context.Context, answer string) (*SubmitResult, error) {
	return c.SubmitResponseWithConfidence(ctx, answer, entities.DefaultConfidence)
}

// SubmitResponseWithConfidence records an answer, awaits the scorer and advances.
//
// A whitespace-only answer is treated as a skip. Scorer failures never block progression:
// the response is kept unscored and the running score is left untouched.
func (c *Controller) SubmitResponseWithConfidence(ctx context.Context, answer string, confidence int) (*SubmitResult, error) {
	q, err := c.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(answer) == "" {
		if err := c.SkipCurrent(); err != nil {
			return nil, err
		}
		return &SubmitResult{Completed: c.session.IsCompleted()}, nil
	}

	now := c.now()
	elapsed := int(now.Sub(c.session.QuestionStartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	response := entities.InterviewResponse{
		ID:         uuid.NewString(),
		QuestionID: q.ID,
		Answer:     answer,
		Duration:   elapsed,
		Confidence: clampConfidence(confidence),
		Timestamp:  now,
	}

	score, err := c.scorer.Score(ctx, q, answer)
	if err != nil {
		c.logger.Warn("response recorded without score",
			zap.String("session_id", c.session.ID),
			zap.String("question_id", q.ID),
			zap.Error(err),
		)
		score = nil
	}

	s := c.session
	if score != nil {
		score.ResponseID = response.ID
		response.Scored = true

		n := float64(len(s.RawScores))
		s.RunningScore = roundHalfUp((s.RunningScore*n + float64(score.OverallScore)) / (n + 1))
		s.RawScores = append(s.RawScores, score.OverallScore)
		s.Scores = append(s.Scores, *score)
	}
	s.Responses = append(s.Responses, response)

	c.advance()

	return &SubmitResult{
		Response:  response,
		Score:     score,
		Completed: s.IsCompleted(),
	}, nil
}

// SkipCurrent moves past the current question without recording a response
func (c *Controller) SkipCurrent() error {
	q, err := c.CurrentQuestion()
	if err != nil {
		return err
	}

	c.logger.Debug("question skipped",
		zap.String("session_id", c.session.ID),
		zap.String("question_id", q.ID),
	)
	c.advance()
	return nil
}

// Pause stops the session clock for the current question
func (c *Controller) Pause() error {
	if !c.session.IsInProgress() {
		return c.invalidTransition(entities.SessionStatusPaused)
	}
	now := c.now()
	c.session.Status = entities.SessionStatusPaused
	c.session.PausedAt = &now
	return nil
}

// Resume returns a paused session to in-progress and restarts the question timer
func (c *Controller) Resume() error {
	if !c.session.IsPaused() {
		return c.invalidTransition(entities.SessionStatusInProgress)
	}
	c.session.Status = entities.SessionStatusInProgress
	c.session.PausedAt = nil
	c.session.QuestionStartedAt = c.now()
	return nil
}

// Snapshot returns a read-only copy of the session
func (c *Controller) Snapshot() *entities.Session {
	return c.session.Clone()
}

// Summary summarizes the owned session
func (c *Controller) Summary() (*entities.SessionSummary, error) {
	return Summarize(c.session)
}

func (c *Controller) advance() {
	s := c.session
	s.CurrentIndex++
	now := c.now()
	s.QuestionStartedAt = now

	if s.CurrentIndex >= len(s.Questions) {
		s.CurrentIndex = len(s.Questions)
		s.Status = entities.SessionStatusCompleted
		s.CompletedAt = &now

		c.logger.Info("session completed",
			zap.String("session_id", s.ID),
			zap.Int("answered", len(s.Responses)),
			zap.Int("scored", s.ScoredCount()),
			zap.Float64("running_score", s.RunningScore),
		)
	}
}

func (c *Controller) noCurrentQuestion() error {
	return usecaseErrors.NewStateError(usecaseErrors.ErrNoCurrentQuestion, c.session.ID, string(c.session.Status))
}

func (c *Controller) invalidTransition(to entities.SessionStatus) error {
	return fmt.Errorf("%w: %s -> %s", usecaseErrors.ErrInvalidTransition, c.session.Status, to)
}

func clampConfidence(v int) int {
	if v < entities.MinConfidence {
		return entities.MinConfidence
	}
	if v > entities.MaxConfidence {
		return entities.MaxConfidence
	}
	return v
}

// roundHalfUp rounds like the live score display: .5 goes up
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
