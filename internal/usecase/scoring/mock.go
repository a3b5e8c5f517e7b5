package scoring

import (
	"context"
	"time"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/pkg/random"
)

const (
	mockMinScore  = 6
	mockMaxScore  = 10
	responseIDLen = 9
	base36        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// MockSuggestions are the canned coaching tips returned by the mock scorer
var MockSuggestions = []string{
	"Consider providing more specific examples",
	"Try to structure your response using the STAR method",
	"Include quantifiable results when possible",
	"Practice speaking more clearly and at a measured pace",
}

// MockScorer returns placeholder scores drawn from an injected random source
type MockScorer struct {
	rng     random.Source
	latency time.Duration
}

// NewMockScorer creates a mock scorer. latency simulates processing time.
func NewMockScorer(rng random.Source, latency time.Duration) *MockScorer {
	return &MockScorer{rng: rng, latency: latency}
}

// Score waits for the simulated latency and returns scores in [6, 10]
func (m *MockScorer) Score(ctx context.Context, _ entities.Question, _ string) (*entities.ScoreResult, error) {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &entities.ScoreResult{
		ResponseID: m.responseID(),
		ContentAnalysis: entities.ContentAnalysis{
			Clarity:      m.score(),
			Completeness: m.score(),
			Relevance:    m.score(),
			Structure:    m.score(),
		},
		DeliveryAnalysis: entities.DeliveryAnalysis{
			Confidence:   m.score(),
			Pace:         m.score(),
			Articulation: m.score(),
		},
		Suggestions:  append([]string(nil), MockSuggestions...),
		OverallScore: m.score(),
	}, nil
}

func (m *MockScorer) score() int {
	return mockMinScore + m.rng.Intn(mockMaxScore-mockMinScore+1)
}

func (m *MockScorer) responseID() string {
	b := make([]byte, responseIDLen)
	for i := range b {
		b[i] = base36[m.rng.Intn(len(base36))]
	}
	return string(b)
}
