package entities

import "errors"

// Domain errors
var (
	// Settings errors
	ErrInvalidCategory      = errors.New("invalid question category")
	ErrInvalidDifficulty    = errors.New("invalid difficulty")
	ErrInvalidQuestionType  = errors.New("invalid question type")
	ErrInvalidQuestionCount = errors.New("question count must be at least 1")

	// Scoring errors
	ErrScoreOutOfRange = errors.New("score out of range")
)
