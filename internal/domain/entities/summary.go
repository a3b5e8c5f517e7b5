package entities

import "fmt"

// SessionSummary is the final report of a completed session
type SessionSummary struct {
	SessionID           string           `json:"session_id"`
	Title               string           `json:"title"`
	Category            QuestionCategory `json:"category"`
	QuestionCount       int              `json:"question_count"`
	AnsweredCount       int              `json:"answered_count"`
	SkippedCount        int              `json:"skipped_count"`
	ScoredCount         int              `json:"scored_count"`
	AverageScore        float64          `json:"average_score"`
	RawAverageScore     float64          `json:"raw_average_score"`
	TotalElapsedSeconds int              `json:"total_elapsed_seconds"`
	FormattedDuration   string           `json:"formatted_duration"`
	Rating              string           `json:"rating"`
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
