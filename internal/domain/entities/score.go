package entities

import "fmt"

const (
	MinScore = 1
	MaxScore = 10
)

// ContentAnalysis grades what was said
type ContentAnalysis struct {
	Clarity      int `json:"clarity"`
	Completeness int `json:"completeness"`
	Relevance    int `json:"relevance"`
	Structure    int `json:"structure"`
}

// DeliveryAnalysis grades how it was said
type DeliveryAnalysis struct {
	Confidence   int `json:"confidence"`
	Pace         int `json:"pace"`
	Articulation int `json:"articulation"`
}

// ScoreResult is the grading of a single response
type ScoreResult struct {
	ResponseID       string           `json:"response_id"`
	ContentAnalysis  ContentAnalysis  `json:"content_analysis"`
	DeliveryAnalysis DeliveryAnalysis `json:"delivery_analysis"`
	Suggestions      []string         `json:"suggestions"`
	OverallScore     int              `json:"overall_score"`
}

// Rating labels for a score
const (
	RatingExcellent        = "excellent"
	RatingGood             = "good"
	RatingFair             = "fair"
	RatingNeedsImprovement = "needs-improvement"
)

// RatingFor maps a 1-10 score to a rating label
func RatingFor(score float64) string {
	switch {
	case score >= 9:
		return RatingExcellent
	case score >= 7:
		return RatingGood
	case score >= 5:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

// Rating returns the rating label of the overall score
func (r *ScoreResult) Rating() string {
	return RatingFor(float64(r.OverallScore))
}

// Validate checks every sub-score and the overall score are within [MinScore, MaxScore]
func (r *ScoreResult) Validate() error {
	scores := map[string]int{
		"clarity":       r.ContentAnalysis.Clarity,
		"completeness":  r.ContentAnalysis.Completeness,
		"relevance":     r.ContentAnalysis.Relevance,
		"structure":     r.ContentAnalysis.Structure,
		"confidence":    r.DeliveryAnalysis.Confidence,
		"pace":          r.DeliveryAnalysis.Pace,
		"articulation":  r.DeliveryAnalysis.Articulation,
		"overall_score": r.OverallScore,
	}
	for name, v := range scores {
		if v < MinScore || v > MaxScore {
			return fmt.Errorf("%w: %s=%d", ErrScoreOutOfRange, name, v)
		}
	}
	return nil
}
