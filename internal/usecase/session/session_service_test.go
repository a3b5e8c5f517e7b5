package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/adapter/repository"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
	"github.com/johnquangdev/interview-practice/internal/usecase/question"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
	"github.com/johnquangdev/interview-practice/pkg/random"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.SessionEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event entities.SessionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []entities.SessionEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entities.SessionEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type recordingArchiver struct {
	reports []*entities.SessionSummary
}

func (a *recordingArchiver) ArchiveReport(ctx context.Context, s *entities.Session, summary *entities.SessionSummary) error {
	a.reports = append(a.reports, summary)
	return nil
}

type serviceFixture struct {
	svc      *SessionService
	events   *recordingPublisher
	archiver *recordingArchiver
}

func newServiceFixture(t *testing.T, scorer scoring.Provider) *serviceFixture {
	t.Helper()
	store := cache.NewMemoryStore(0)
	t.Cleanup(store.Close)

	rng := random.New(21)
	if scorer == nil {
		scorer = scoring.NewMockScorer(rng, 0)
	}

	f := &serviceFixture{events: &recordingPublisher{}, archiver: &recordingArchiver{}}
	f.svc = NewSessionService(
		repository.NewMemorySessionRepository(store, 0),
		question.NewSelector(question.NewDefaultBank(), rng),
		scorer,
		Config{Events: f.events, Archiver: f.archiver},
	)
	return f
}

var mediumTeamwork = entities.InterviewSettings{
	Category:      entities.CategoryTeamwork,
	Difficulty:    entities.DifficultyMedium,
	QuestionCount: 3,
}

func TestSessionService_FullFlow(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "alice", mediumTeamwork)
	require.NoError(t, err)
	require.Len(t, started.Questions, 3)
	assert.Equal(t, "alice", started.UserID)

	q, err := f.svc.CurrentQuestion(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, started.Questions[0].ID, q.ID)

	out, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "I led the team", Confidence: 8})
	require.NoError(t, err)
	require.NotNil(t, out.Response)
	require.NotNil(t, out.Score)
	assert.Equal(t, 8, out.Response.Confidence)
	assert.False(t, out.Completed)

	_, err = f.svc.Skip(ctx, started.ID)
	require.NoError(t, err)

	_, err = f.svc.Summary(ctx, started.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrIncompleteSession)

	out, err = f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "Another answer"})
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, entities.DefaultConfidence, out.Response.Confidence)

	summary, err := f.svc.Summary(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.QuestionCount)
	assert.Equal(t, 2, summary.AnsweredCount)
	assert.Equal(t, 1, summary.SkippedCount)

	assert.Equal(t, []entities.SessionEventType{
		entities.EventSessionStarted,
		entities.EventResponseRecorded,
		entities.EventResponseRecorded,
		entities.EventSessionCompleted,
	}, f.events.types())
	require.Len(t, f.archiver.reports, 1)
	assert.Equal(t, started.ID, f.archiver.reports[0].SessionID)

	dash, err := f.svc.Dashboard(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, dash.TotalSessions)
}

func TestSessionService_ClampsQuestionCount(t *testing.T) {
	f := newServiceFixture(t, nil)

	s := mediumTeamwork
	s.QuestionCount = 1
	started, err := f.svc.Start(context.Background(), "", s)
	require.NoError(t, err)
	assert.Equal(t, 3, started.Settings.QuestionCount)

	s.QuestionCount = 50
	started, err = f.svc.Start(context.Background(), "", s)
	require.NoError(t, err)
	assert.Equal(t, 10, started.Settings.QuestionCount)
	// only four medium questions exist
	assert.Len(t, started.Questions, 4)
}

func TestSessionService_StartErrors(t *testing.T) {
	f := newServiceFixture(t, nil)

	_, err := f.svc.Start(context.Background(), "", entities.InterviewSettings{Category: "sales", Difficulty: entities.DifficultyEasy, QuestionCount: 3})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidSettings)

	f.svc.selector = staticSelector{}
	_, err = f.svc.Start(context.Background(), "", mediumTeamwork)
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptySession)
}

func TestSessionService_NotFound(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, usecaseErrors.ErrSessionNotFound)
	_, err = f.svc.Submit(ctx, SubmitInput{SessionID: "nope", Answer: "x"})
	assert.ErrorIs(t, err, usecaseErrors.ErrSessionNotFound)
	_, err = f.svc.Skip(ctx, "nope")
	assert.ErrorIs(t, err, usecaseErrors.ErrSessionNotFound)
}

func TestSessionService_PauseResume(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "", mediumTeamwork)
	require.NoError(t, err)

	paused, err := f.svc.Pause(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusPaused, paused.Status)

	_, err = f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "x"})
	assert.ErrorIs(t, err, usecaseErrors.ErrNoCurrentQuestion)
	_, err = f.svc.Pause(ctx, started.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidTransition)

	resumed, err := f.svc.Resume(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusInProgress, resumed.Status)
}

func TestSessionService_ScorerFailureKeepsProgress(t *testing.T) {
	failing := scoring.NewGuard(providerFunc(func(ctx context.Context, q entities.Question, a string) (*entities.ScoreResult, error) {
		return nil, errors.New("model offline")
	}), "failing", time.Second, nil)
	f := newServiceFixture(t, failing)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "", mediumTeamwork)
	require.NoError(t, err)

	out, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "answer"})
	require.NoError(t, err)
	assert.Nil(t, out.Score)
	assert.False(t, out.Response.Scored)
	assert.Equal(t, 1, out.Session.CurrentIndex)
	assert.Equal(t, 0.0, out.Session.RunningScore)
}

func TestSessionService_BlankAnswerSkips(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "", mediumTeamwork)
	require.NoError(t, err)

	out, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "  "})
	require.NoError(t, err)
	assert.Nil(t, out.Response)
	assert.Equal(t, 1, out.Session.CurrentIndex)
	assert.Empty(t, out.Session.Responses)
}

func TestSessionService_SubmitForStaleQuestion(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "", mediumTeamwork)
	require.NoError(t, err)
	first := started.Questions[0].ID

	_, err = f.svc.Skip(ctx, started.ID)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, QuestionID: first, Answer: "late answer"})
	assert.ErrorIs(t, err, usecaseErrors.ErrQuestionMismatch)

	s, err := f.svc.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Responses)
	assert.Equal(t, 1, s.CurrentIndex)

	out, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, QuestionID: started.Questions[1].ID, Answer: "on time"})
	require.NoError(t, err)
	require.NotNil(t, out.Response)
	assert.Equal(t, started.Questions[1].ID, out.Response.QuestionID)
}

func TestSessionService_SlowScorerIgnoringContextReleasesSession(t *testing.T) {
	slow := scoring.NewGuard(providerFunc(func(ctx context.Context, q entities.Question, a string) (*entities.ScoreResult, error) {
		time.Sleep(2 * time.Second)
		return nil, errors.New("too late")
	}), "slow", 50*time.Millisecond, nil)
	f := newServiceFixture(t, slow)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, "", mediumTeamwork)
	require.NoError(t, err)

	begin := time.Now()
	out, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "answer"})
	require.NoError(t, err)
	assert.Less(t, time.Since(begin), time.Second)
	assert.False(t, out.Response.Scored)

	_, err = f.svc.Skip(ctx, started.ID)
	assert.NoError(t, err)
}

func TestSessionService_ConcurrentSubmitsAreSerialized(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	s := mediumTeamwork
	s.QuestionCount = 4
	started, err := f.svc.Start(ctx, "", s)
	require.NoError(t, err)
	require.Len(t, started.Questions, 4)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(ctx, SubmitInput{SessionID: started.ID, Answer: "answer"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := f.svc.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, final.IsCompleted())
	assert.Len(t, final.Responses, 4)

	seen := map[string]bool{}
	for _, r := range final.Responses {
		assert.False(t, seen[r.QuestionID])
		seen[r.QuestionID] = true
	}
}

func TestSessionService_PublishFailureIsNotFatal(t *testing.T) {
	f := newServiceFixture(t, nil)
	f.events.err = errors.New("broker down")

	_, err := f.svc.Start(context.Background(), "", mediumTeamwork)
	assert.NoError(t, err)
}

// providerFunc adapts a function to scoring.Provider
type providerFunc func(ctx context.Context, q entities.Question, answer string) (*entities.ScoreResult, error)

func (f providerFunc) Score(ctx context.Context, q entities.Question, answer string) (*entities.ScoreResult, error) {
	return f(ctx, q, answer)
}
