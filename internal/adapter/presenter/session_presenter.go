package presenter

import (
	"github.com/johnquangdev/interview-practice/internal/adapter/dto/session"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	sessionUsecase "github.com/johnquangdev/interview-practice/internal/usecase/session"
)

// ToQuestionResponse converts a Question entity to QuestionResponse DTO
func ToQuestionResponse(q entities.Question) session.QuestionResponse {
	return session.QuestionResponse{
		ID:         q.ID,
		Text:       q.Text,
		Category:   string(q.Category),
		Difficulty: string(q.Difficulty),
		Type:       string(q.Type),
		Industry:   q.Industry,
		Role:       q.Role,
	}
}

// ToQuestionListResponse converts bank results to QuestionListResponse
func ToQuestionListResponse(questions []entities.Question) *session.QuestionListResponse {
	out := make([]session.QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = ToQuestionResponse(q)
	}
	return &session.QuestionListResponse{Questions: out, Total: len(out)}
}

// ToAnswerResponse converts an InterviewResponse entity to AnswerResponse DTO
func ToAnswerResponse(r entities.InterviewResponse) session.AnswerResponse {
	return session.AnswerResponse{
		ID:         r.ID,
		QuestionID: r.QuestionID,
		Answer:     r.Answer,
		Duration:   r.Duration,
		Confidence: r.Confidence,
		Scored:     r.Scored,
		Timestamp:  r.Timestamp,
	}
}

// ToScoreResponse converts a ScoreResult entity to ScoreResponse DTO
func ToScoreResponse(s *entities.ScoreResult) *session.ScoreResponse {
	if s == nil {
		return nil
	}
	return &session.ScoreResponse{
		ResponseID:   s.ResponseID,
		OverallScore: s.OverallScore,
		Rating:       s.Rating(),
		ContentAnalysis: map[string]int{
			"clarity":      s.ContentAnalysis.Clarity,
			"completeness": s.ContentAnalysis.Completeness,
			"relevance":    s.ContentAnalysis.Relevance,
			"structure":    s.ContentAnalysis.Structure,
		},
		DeliveryAnalysis: map[string]int{
			"confidence":   s.DeliveryAnalysis.Confidence,
			"pace":         s.DeliveryAnalysis.Pace,
			"articulation": s.DeliveryAnalysis.Articulation,
		},
		Suggestions: append([]string{}, s.Suggestions...),
	}
}

// ToSessionResponse converts a Session entity to SessionResponse DTO
func ToSessionResponse(s *entities.Session) *session.SessionResponse {
	if s == nil {
		return nil
	}

	response := &session.SessionResponse{
		ID:     s.ID,
		UserID: s.UserID,
		Title:  s.Title,
		Status: string(s.Status),
		Settings: session.SettingsResponse{
			Category:        string(s.Settings.Category),
			Difficulty:      string(s.Settings.Difficulty),
			QuestionCount:   s.Settings.QuestionCount,
			IncludeFollowUp: s.Settings.IncludeFollowUp,
			Industry:        s.Settings.Industry,
			Role:            s.Settings.Role,
			DurationMinutes: int(s.Settings.Duration().Minutes()),
		},
		CurrentIndex:   s.CurrentIndex,
		TotalQuestions: len(s.Questions),
		Progress:       s.Progress(),
		RunningScore:   s.RunningScore,
		Questions:      make([]session.QuestionResponse, len(s.Questions)),
		Responses:      make([]session.AnswerResponse, len(s.Responses)),
		Scores:         make([]session.ScoreResponse, len(s.Scores)),
		StartedAt:      s.StartedAt,
		PausedAt:       s.PausedAt,
		CompletedAt:    s.CompletedAt,
	}

	for i, q := range s.Questions {
		response.Questions[i] = ToQuestionResponse(q)
	}
	for i, r := range s.Responses {
		response.Responses[i] = ToAnswerResponse(r)
	}
	for i := range s.Scores {
		response.Scores[i] = *ToScoreResponse(&s.Scores[i])
	}

	// Only expose the current question while answers are accepted
	if s.IsInProgress() {
		if q, ok := s.CurrentQuestion(); ok {
			current := ToQuestionResponse(q)
			response.CurrentQuestion = &current
		}
	}

	return response
}

// ToSubmitResponse converts a submit outcome to SubmitResponseResponse DTO
func ToSubmitResponse(out *sessionUsecase.SubmitOutput, transcript string) *session.SubmitResponseResponse {
	response := &session.SubmitResponseResponse{
		Score:      ToScoreResponse(out.Score),
		Skipped:    out.Response == nil,
		Completed:  out.Completed,
		Transcript: transcript,
		Session:    ToSessionResponse(out.Session),
	}
	if out.Response != nil {
		answer := ToAnswerResponse(*out.Response)
		response.Response = &answer
	}
	return response
}

// ToSummaryResponse converts a SessionSummary entity to SummaryResponse DTO
func ToSummaryResponse(s *entities.SessionSummary) *session.SummaryResponse {
	if s == nil {
		return nil
	}
	return &session.SummaryResponse{
		SessionID:           s.SessionID,
		Title:               s.Title,
		Category:            string(s.Category),
		QuestionCount:       s.QuestionCount,
		AnsweredCount:       s.AnsweredCount,
		SkippedCount:        s.SkippedCount,
		ScoredCount:         s.ScoredCount,
		AverageScore:        s.AverageScore,
		RawAverageScore:     s.RawAverageScore,
		TotalElapsedSeconds: s.TotalElapsedSeconds,
		FormattedDuration:   s.FormattedDuration,
		Rating:              s.Rating,
	}
}

// ToDashboardResponse converts a Dashboard entity to DashboardResponse DTO
func ToDashboardResponse(d *entities.Dashboard) *session.DashboardResponse {
	if d == nil {
		return nil
	}

	response := &session.DashboardResponse{
		UserID:         d.UserID,
		TotalSessions:  d.TotalSessions,
		AverageScore:   d.AverageScore,
		TotalMinutes:   d.TotalMinutes,
		RecentSessions: make([]session.SessionOverviewResponse, len(d.RecentSessions)),
		TopCategories:  toCategoryStats(d.TopCategories),
		Categories:     toCategoryStats(d.Categories),
	}
	for i, o := range d.RecentSessions {
		response.RecentSessions[i] = session.SessionOverviewResponse{
			ID:              o.ID,
			Title:           o.Title,
			Category:        string(o.Category),
			Difficulty:      string(o.Difficulty),
			Score:           o.Score,
			Rating:          o.Rating,
			DurationMinutes: o.Minutes,
			CreatedAt:       o.CreatedAt,
			CompletedAt:     o.CompletedAt,
		}
	}
	return response
}

func toCategoryStats(stats []entities.CategoryStat) []session.CategoryStatResponse {
	out := make([]session.CategoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = session.CategoryStatResponse{
			Category:     string(s.Category),
			DisplayName:  s.DisplayName,
			Sessions:     s.Sessions,
			AverageScore: s.AverageScore,
		}
	}
	return out
}
