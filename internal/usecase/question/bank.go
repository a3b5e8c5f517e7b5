package question

import (
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// Predicate filters questions
type Predicate func(q entities.Question) bool

// Bank is a read-only catalog of questions. It is safe for concurrent use
// because nothing mutates it after construction.
type Bank struct {
	questions []entities.Question
}

// NewBank creates a bank from the given questions. The slice is copied.
func NewBank(questions []entities.Question) *Bank {
	return &Bank{questions: append([]entities.Question(nil), questions...)}
}

// NewDefaultBank creates a bank with the built-in catalog
func NewDefaultBank() *Bank {
	return NewBank(DefaultQuestions())
}

// Find returns every question matching the predicate, in catalog order.
// A nil predicate matches everything.
func (b *Bank) Find(pred Predicate) []entities.Question {
	out := make([]entities.Question, 0)
	for _, q := range b.questions {
		if pred == nil || pred(q) {
			out = append(out, q)
		}
	}
	return out
}

// Size returns the number of questions in the bank
func (b *Bank) Size() int {
	return len(b.questions)
}

// ByCategory matches questions of a category
func ByCategory(c entities.QuestionCategory) Predicate {
	return func(q entities.Question) bool { return q.Category == c }
}

// ByDifficulty matches questions of a difficulty
func ByDifficulty(d entities.Difficulty) Predicate {
	return func(q entities.Question) bool { return q.Difficulty == d }
}

// ByType matches questions of a type
func ByType(t entities.QuestionType) Predicate {
	return func(q entities.Question) bool { return q.Type == t }
}

// All combines predicates with AND. Nil predicates are ignored.
func All(preds ...Predicate) Predicate {
	return func(q entities.Question) bool {
		for _, p := range preds {
			if p != nil && !p(q) {
				return false
			}
		}
		return true
	}
}

// DefaultQuestions returns the built-in catalog
func DefaultQuestions() []entities.Question {
	return []entities.Question{
		{ID: "1", Text: "Tell me about a time when you had to lead a team through a difficult project.", Category: entities.CategoryLeadership, Difficulty: entities.DifficultyMedium, Type: entities.QuestionTypeBehavioral},
		{ID: "2", Text: "Describe a situation where you had to resolve a conflict within your team.", Category: entities.CategoryTeamwork, Difficulty: entities.DifficultyMedium, Type: entities.QuestionTypeBehavioral},
		{ID: "3", Text: "How do you approach solving complex problems?", Category: entities.CategoryProblemSolving, Difficulty: entities.DifficultyEasy, Type: entities.QuestionTypeSituational},
		{ID: "4", Text: "Explain a technical concept to a non-technical stakeholder.", Category: entities.CategoryCommunication, Difficulty: entities.DifficultyMedium, Type: entities.QuestionTypeSituational},
		{ID: "5", Text: "What are your career goals for the next 5 years?", Category: entities.CategoryFutureGoals, Difficulty: entities.DifficultyEasy, Type: entities.QuestionTypeBehavioral},
		{ID: "6", Text: "Tell me about a time when you failed and what you learned from it.", Category: entities.CategoryPastExperience, Difficulty: entities.DifficultyHard, Type: entities.QuestionTypeBehavioral},
		{ID: "7", Text: "How do you stay updated with industry trends and new technologies?", Category: entities.CategoryTechnicalSkills, Difficulty: entities.DifficultyMedium, Type: entities.QuestionTypeSituational},
		{ID: "8", Text: "Describe a time when you had to work with someone you didn't get along with.", Category: entities.CategoryTeamwork, Difficulty: entities.DifficultyHard, Type: entities.QuestionTypeBehavioral},
	}
}
