package question

import (
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/pkg/random"
)

// Selector picks the ordered question list for a session
type Selector struct {
	bank *Bank
	rng  random.Source
}

// NewSelector creates a selector over the bank using rng for ordering
func NewSelector(bank *Bank, rng random.Source) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// Select returns up to settings.QuestionCount questions.
//
// Candidates are the category+difficulty matches; when there are fewer than requested,
// every other question of the same difficulty is appended (deduplicated by id).
// The candidates are shuffled and truncated. There is no further fallback tier, so
// the result may be shorter than requested, or empty.
func (s *Selector) Select(settings entities.InterviewSettings) []entities.Question {
	if settings.QuestionCount <= 0 {
		return []entities.Question{}
	}

	candidates := s.bank.Find(All(
		ByCategory(settings.Category),
		ByDifficulty(settings.Difficulty),
	))

	if len(candidates) < settings.QuestionCount {
		seen := make(map[string]struct{}, len(candidates))
		for _, q := range candidates {
			seen[q.ID] = struct{}{}
		}
		for _, q := range s.bank.Find(ByDifficulty(settings.Difficulty)) {
			if _, dup := seen[q.ID]; dup {
				continue
			}
			seen[q.ID] = struct{}{}
			candidates = append(candidates, q)
		}
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > settings.QuestionCount {
		candidates = candidates[:settings.QuestionCount]
	}
	return candidates
}
