package question

import "github.com/johnquangdev/interview-practice/internal/domain/entities"

// CategoryInfo describes a category for pickers
type CategoryInfo struct {
	Category    entities.QuestionCategory `json:"category"`
	DisplayName string                    `json:"display_name"`
	Description string                    `json:"description"`
	Available   int                       `json:"available"`
}

// DifficultyInfo describes a difficulty level for pickers
type DifficultyInfo struct {
	Value       entities.Difficulty `json:"value"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
}

// Catalog lists what the bank can serve
type Catalog struct {
	Categories   []CategoryInfo          `json:"categories"`
	Difficulties []DifficultyInfo        `json:"difficulties"`
	Types        []entities.QuestionType `json:"types"`
}

var categoryDescriptions = map[entities.QuestionCategory]string{
	entities.CategoryLeadership:      "Practice leadership and management scenarios",
	entities.CategoryTeamwork:        "Collaboration and team dynamics questions",
	entities.CategoryProblemSolving:  "Analytical and critical thinking challenges",
	entities.CategoryCommunication:   "Verbal and written communication skills",
	entities.CategoryTechnicalSkills: "Technical knowledge and expertise",
	entities.CategoryCultureFit:      "Company culture and values alignment",
	entities.CategoryPastExperience:  "Previous work experience and achievements",
	entities.CategoryFutureGoals:     "Career aspirations and professional development",
}

// Catalog builds the picker metadata, counting available questions per category
func (b *Bank) Catalog() Catalog {
	cats := make([]CategoryInfo, 0, len(entities.Categories))
	for _, c := range entities.Categories {
		cats = append(cats, CategoryInfo{
			Category:    c,
			DisplayName: entities.CategoryDisplayName(c),
			Description: categoryDescriptions[c],
			Available:   len(b.Find(ByCategory(c))),
		})
	}

	return Catalog{
		Categories: cats,
		Difficulties: []DifficultyInfo{
			{Value: entities.DifficultyEasy, Label: "Beginner", Description: "Basic questions to get started"},
			{Value: entities.DifficultyMedium, Label: "Intermediate", Description: "Standard interview questions"},
			{Value: entities.DifficultyHard, Label: "Advanced", Description: "Challenging scenarios and edge cases"},
		},
		Types: []entities.QuestionType{
			entities.QuestionTypeBehavioral,
			entities.QuestionTypeTechnical,
			entities.QuestionTypeSituational,
		},
	}
}
