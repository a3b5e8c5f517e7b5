package entities

import "time"

const (
	MinConfidence     = 1
	MaxConfidence     = 10
	DefaultConfidence = 7
)

// InterviewResponse is one recorded answer. It is never mutated after creation.
type InterviewResponse struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Answer     string    `json:"answer"`
	Duration   int       `json:"duration"` // seconds
	Confidence int       `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	Scored     bool      `json:"scored"`
}
