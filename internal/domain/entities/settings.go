package entities

import (
	"fmt"
	"strings"
	"time"
)

// MinutesPerQuestion is the planning estimate used to derive a session duration
const MinutesPerQuestion = 3

// InterviewSettings holds what the user asked for when starting a session
type InterviewSettings struct {
	Category        QuestionCategory `json:"category"`
	Difficulty      Difficulty       `json:"difficulty"`
	QuestionCount   int              `json:"question_count"`
	IncludeFollowUp bool             `json:"include_follow_up"`
	Industry        *string          `json:"industry,omitempty"`
	Role            *string          `json:"role,omitempty"`
}

// Duration returns the estimated session length
func (s InterviewSettings) Duration() time.Duration {
	return time.Duration(s.QuestionCount*MinutesPerQuestion) * time.Minute
}

// Validate checks the settings enums and count
func (s InterviewSettings) Validate() error {
	if !s.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, s.Category)
	}
	if !s.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, s.Difficulty)
	}
	if s.QuestionCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuestionCount, s.QuestionCount)
	}
	return nil
}

// Clamp returns a copy with QuestionCount forced into [min, max]
func (s InterviewSettings) Clamp(min, max int) InterviewSettings {
	if s.QuestionCount < min {
		s.QuestionCount = min
	}
	if s.QuestionCount > max {
		s.QuestionCount = max
	}
	return s
}

// Title builds the human readable session title, e.g. "Leadership Interview - Medium Level"
func (s InterviewSettings) Title() string {
	difficulty := string(s.Difficulty)
	if difficulty != "" {
		difficulty = strings.ToUpper(difficulty[:1]) + difficulty[1:]
	}
	return fmt.Sprintf("%s Interview - %s Level", CategoryDisplayName(s.Category), difficulty)
}

// CategoryDisplayName returns the display label of a category
func CategoryDisplayName(c QuestionCategory) string {
	switch c {
	case CategoryLeadership:
		return "Leadership"
	case CategoryTeamwork:
		return "Teamwork"
	case CategoryProblemSolving:
		return "Problem Solving"
	case CategoryCommunication:
		return "Communication"
	case CategoryTechnicalSkills:
		return "Technical Skills"
	case CategoryCultureFit:
		return "Culture Fit"
	case CategoryPastExperience:
		return "Past Experience"
	case CategoryFutureGoals:
		return "Future Goals"
	default:
		return string(c)
	}
}
