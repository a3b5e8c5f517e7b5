package session

// StartSessionRequest represents the request to start a practice session
type StartSessionRequest struct {
	Category        string  `json:"category" validate:"required,oneof=leadership teamwork problem-solving communication technical-skills culture-fit past-experience future-goals"`
	Difficulty      string  `json:"difficulty" validate:"required,oneof=easy medium hard"`
	QuestionCount   int     `json:"question_count" validate:"omitempty,min=1,max=50"`
	IncludeFollowUp bool    `json:"include_follow_up"`
	Industry        *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Role            *string `json:"role,omitempty" validate:"omitempty,max=100"`
}

// SubmitResponseRequest represents a typed answer to the current question.
// An empty answer skips the question. When QuestionID is set the answer is rejected
// unless that question is still current.
type SubmitResponseRequest struct {
	QuestionID string `json:"question_id,omitempty" validate:"omitempty,max=128"`
	Answer     string `json:"answer" validate:"max=10000"`
	Confidence int    `json:"confidence,omitempty" validate:"omitempty,min=1,max=10"`
}

// ListQuestionsRequest represents query parameters for browsing the bank
type ListQuestionsRequest struct {
	Category   string `query:"category" validate:"omitempty,oneof=leadership teamwork problem-solving communication technical-skills culture-fit past-experience future-goals"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Type       string `query:"type" validate:"omitempty,oneof=behavioral technical situational"`
}

// AnalyzeRequest is the body accepted by the analysis endpoint
type AnalyzeRequest struct {
	Question string `json:"question" validate:"required"`
	Response string `json:"response" validate:"required"`
}
