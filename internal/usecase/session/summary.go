package session

import (
	"math"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

// Summarize reduces a completed session into its final report.
//
// AverageScore is the running score the user saw live. RawAverageScore is the exact mean of
// the stored raw scores, so the incremental rounding drift between the two stays visible.
func Summarize(s *entities.Session) (*entities.SessionSummary, error) {
	if s == nil {
		return nil, usecaseErrors.ErrSessionNotFound
	}
	if !s.IsCompleted() {
		return nil, usecaseErrors.NewStateError(usecaseErrors.ErrIncompleteSession, s.ID, string(s.Status))
	}

	elapsed := 0
	if s.CompletedAt != nil {
		elapsed = int(s.CompletedAt.Sub(s.StartedAt).Seconds())
	}
	if elapsed < 0 {
		elapsed = 0
	}

	summary := &entities.SessionSummary{
		SessionID:           s.ID,
		Title:               s.Title,
		Category:            s.Settings.Category,
		QuestionCount:       len(s.Questions),
		AnsweredCount:       len(s.Responses),
		SkippedCount:        s.SkippedCount(),
		ScoredCount:         s.ScoredCount(),
		AverageScore:        s.RunningScore,
		RawAverageScore:     rawAverage(s.RawScores),
		TotalElapsedSeconds: elapsed,
		FormattedDuration:   entities.FormatDuration(elapsed),
	}
	if summary.ScoredCount > 0 {
		summary.Rating = entities.RatingFor(summary.AverageScore)
	}
	return summary, nil
}

// rawAverage returns the mean of scores rounded to two decimals
func rawAverage(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, v := range scores {
		total += v
	}
	return math.Round(float64(total)/float64(len(scores))*100) / 100
}
