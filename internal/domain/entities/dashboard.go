package entities

import "time"

// SessionOverview is a compact view of a completed session for history lists
type SessionOverview struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Category    QuestionCategory `json:"category"`
	Difficulty  Difficulty       `json:"difficulty"`
	Score       float64          `json:"score"`
	Rating      string           `json:"rating"`
	Minutes     int              `json:"duration_minutes"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// CategoryStat aggregates one user's completed sessions in a category
type CategoryStat struct {
	Category     QuestionCategory `json:"category"`
	DisplayName  string           `json:"display_name"`
	Sessions     int              `json:"sessions"`
	AverageScore float64          `json:"average_score"`
}

// Dashboard summarises one user's practice history
type Dashboard struct {
	UserID         string            `json:"user_id"`
	TotalSessions  int               `json:"total_sessions"`
	AverageScore   float64           `json:"average_score"`
	TotalMinutes   int               `json:"total_minutes"`
	RecentSessions []SessionOverview `json:"recent_sessions"`
	TopCategories  []CategoryStat    `json:"top_categories"`
	Categories     []CategoryStat    `json:"categories"`
}
