package session

import "time"

// QuestionResponse represents a question
type QuestionResponse struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Category   string  `json:"category"`
	Difficulty string  `json:"difficulty"`
	Type       string  `json:"type"`
	Industry   *string `json:"industry,omitempty"`
	Role       *string `json:"role,omitempty"`
}

// SettingsResponse represents the settings a session was started with
type SettingsResponse struct {
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty"`
	QuestionCount   int     `json:"question_count"`
	IncludeFollowUp bool    `json:"include_follow_up"`
	Industry        *string `json:"industry,omitempty"`
	Role            *string `json:"role,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
}

// AnswerResponse represents a recorded answer
type AnswerResponse struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Answer     string    `json:"answer"`
	Duration   int       `json:"duration"`
	Confidence int       `json:"confidence"`
	Scored     bool      `json:"scored"`
	Timestamp  time.Time `json:"timestamp"`
}

// ScoreResponse represents the grading of an answer
type ScoreResponse struct {
	ResponseID       string         `json:"response_id"`
	OverallScore     int            `json:"overall_score"`
	Rating           string         `json:"rating"`
	ContentAnalysis  map[string]int `json:"content_analysis"`
	DeliveryAnalysis map[string]int `json:"delivery_analysis"`
	Suggestions      []string       `json:"suggestions"`
}

// SessionResponse represents a session snapshot
type SessionResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id,omitempty"`
	Title           string             `json:"title"`
	Status          string             `json:"status"`
	Settings        SettingsResponse   `json:"settings"`
	CurrentIndex    int                `json:"current_index"`
	TotalQuestions  int                `json:"total_questions"`
	Progress        float64            `json:"progress"`
	RunningScore    float64            `json:"running_score"`
	CurrentQuestion *QuestionResponse  `json:"current_question,omitempty"`
	Questions       []QuestionResponse `json:"questions"`
	Responses       []AnswerResponse   `json:"responses"`
	Scores          []ScoreResponse    `json:"scores"`
	StartedAt       time.Time          `json:"started_at"`
	PausedAt        *time.Time         `json:"paused_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
}

// SubmitResponseResponse represents the outcome of a submitted answer
type SubmitResponseResponse struct {
	Response   *AnswerResponse  `json:"response,omitempty"`
	Score      *ScoreResponse   `json:"score,omitempty"`
	Skipped    bool             `json:"skipped"`
	Completed  bool             `json:"completed"`
	Transcript string           `json:"transcript,omitempty"`
	Session    *SessionResponse `json:"session"`
}

// SummaryResponse represents the final report of a session
type SummaryResponse struct {
	SessionID           string  `json:"session_id"`
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	QuestionCount       int     `json:"question_count"`
	AnsweredCount       int     `json:"answered_count"`
	SkippedCount        int     `json:"skipped_count"`
	ScoredCount         int     `json:"scored_count"`
	AverageScore        float64 `json:"average_score"`
	RawAverageScore     float64 `json:"raw_average_score"`
	TotalElapsedSeconds int     `json:"total_elapsed_seconds"`
	FormattedDuration   string  `json:"formatted_duration"`
	Rating              string  `json:"rating,omitempty"`
}

// SessionOverviewResponse represents a past session on the dashboard
type SessionOverviewResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Category        string     `json:"category"`
	Difficulty      string     `json:"difficulty"`
	Score           float64    `json:"score"`
	Rating          string     `json:"rating,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// CategoryStatResponse represents per category progress
type CategoryStatResponse struct {
	Category     string  `json:"category"`
	DisplayName  string  `json:"display_name"`
	Sessions     int     `json:"sessions"`
	AverageScore float64 `json:"average_score"`
}

// DashboardResponse represents one user's practice history
type DashboardResponse struct {
	UserID         string                    `json:"user_id"`
	TotalSessions  int                       `json:"total_sessions"`
	AverageScore   float64                   `json:"average_score"`
	TotalMinutes   int                       `json:"total_minutes"`
	RecentSessions []SessionOverviewResponse `json:"recent_sessions"`
	TopCategories  []CategoryStatResponse    `json:"top_categories"`
	Categories     []CategoryStatResponse    `json:"categories"`
}

// QuestionListResponse represents a filtered view of the bank
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

// ReportResponse is a temporary link to one archived session report
type ReportResponse struct {
	SessionID string    `json:"session_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportListResponse lists the archived reports of a user
type ReportListResponse struct {
	UserID  string           `json:"user_id"`
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
