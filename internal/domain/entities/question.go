package entities

// QuestionCategory represents the topic area of a question
type QuestionCategory string

const (
	CategoryLeadership      QuestionCategory = "leadership"
	CategoryTeamwork        QuestionCategory = "teamwork"
	CategoryProblemSolving  QuestionCategory = "problem-solving"
	CategoryCommunication   QuestionCategory = "communication"
	CategoryTechnicalSkills QuestionCategory = "technical-skills"
	CategoryCultureFit      QuestionCategory = "culture-fit"
	CategoryPastExperience  QuestionCategory = "past-experience"
	CategoryFutureGoals     QuestionCategory = "future-goals"
)

// Categories lists every category in display order
var Categories = []QuestionCategory{
	CategoryLeadership,
	CategoryTeamwork,
	CategoryProblemSolving,
	CategoryCommunication,
	CategoryTechnicalSkills,
	CategoryCultureFit,
	CategoryPastExperience,
	CategoryFutureGoals,
}

// IsValid checks if the category is one of the known categories
func (c QuestionCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Difficulty represents how hard a question is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty from easiest to hardest
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValid checks if the difficulty is known
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// QuestionType represents the interview style of a question
type QuestionType string

const (
	QuestionTypeBehavioral  QuestionType = "behavioral"
	QuestionTypeTechnical   QuestionType = "technical"
	QuestionTypeSituational QuestionType = "situational"
)

// IsValid checks if the question type is known
func (t QuestionType) IsValid() bool {
	return t == QuestionTypeBehavioral || t == QuestionTypeTechnical || t == QuestionTypeSituational
}

// Question is a single interview question from the bank
type Question struct {
	ID         string           `json:"id" yaml:"id"`
	Text       string           `json:"text" yaml:"text"`
	Category   QuestionCategory `json:"category" yaml:"category"`
	Difficulty Difficulty       `json:"difficulty" yaml:"difficulty"`
	Type       QuestionType     `json:"type" yaml:"type"`
	Industry   *string          `json:"industry,omitempty" yaml:"industry,omitempty"`
	Role       *string          `json:"role,omitempty" yaml:"role,omitempty"`
}
