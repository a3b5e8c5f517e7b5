package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

func completedSession(start time.Time, elapsed time.Duration, raw []int, running float64) *entities.Session {
	done := start.Add(elapsed)
	s := entities.NewSession("u")
	s.Title = "Teamwork Interview - Easy Level"
	s.Settings.Category = entities.CategoryTeamwork
	s.Questions = make([]entities.Question, 4)
	s.Responses = make([]entities.InterviewResponse, len(raw))
	s.RawScores = raw
	s.RunningScore = running
	s.CurrentIndex = 4
	s.Status = entities.SessionStatusCompleted
	s.StartedAt = start
	s.CompletedAt = &done
	return s
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := completedSession(start, 7*time.Minute+5*time.Second, []int{7, 8, 8}, 8)

	summary, err := Summarize(s)
	require.NoError(t, err)

	assert.Equal(t, s.ID, summary.SessionID)
	assert.Equal(t, 4, summary.QuestionCount)
	assert.Equal(t, 3, summary.AnsweredCount)
	assert.Equal(t, 1, summary.SkippedCount)
	assert.Equal(t, 3, summary.ScoredCount)
	assert.Equal(t, 8.0, summary.AverageScore)
	assert.Equal(t, 7.67, summary.RawAverageScore)
	assert.Equal(t, 425, summary.TotalElapsedSeconds)
	assert.Equal(t, "7:05", summary.FormattedDuration)
	assert.Equal(t, entities.RatingGood, summary.Rating)
	assert.Equal(t, entities.CategoryTeamwork, summary.Category)
}

func TestSummarize_Incomplete(t *testing.T) {
	s := entities.NewSession("")
	_, err := Summarize(s)
	assert.ErrorIs(t, err, usecaseErrors.ErrIncompleteSession)

	s.Status = entities.SessionStatusInProgress
	_, err = Summarize(s)
	assert.ErrorIs(t, err, usecaseErrors.ErrIncompleteSession)

	s.Status = entities.SessionStatusPaused
	_, err = Summarize(s)
	assert.ErrorIs(t, err, usecaseErrors.ErrIncompleteSession)
}
