// Package metrics exposes Prometheus collectors for interview sessions and scoring.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "interview_practice"

var (
	// sessionsStarted counts started sessions by category and difficulty.
	sessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of interview sessions started",
		},
		[]string{"category", "difficulty"},
	)

	// sessionsCompleted counts completed sessions by category.
	sessionsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_completed_total",
			Help:      "Total number of interview sessions completed",
		},
		[]string{"category"},
	)

	// responsesTotal counts question outcomes.
	responsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_total",
			Help:      "Total number of question outcomes",
		},
		[]string{"outcome"}, // outcome: scored, unscored, skipped
	)

	// scoringDuration is a histogram of scoring provider call duration.
	scoringDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Duration of scoring provider calls in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "status"}, // status: success, error
	)

	// finalScore is a histogram of completed session average scores.
	finalScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_average_score",
			Help:      "Average score of completed sessions",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	registerOnce sync.Once
)

// Outcomes for RecordResponse
const (
	OutcomeScored   = "scored"
	OutcomeUnscored = "unscored"
	OutcomeSkipped  = "skipped"
)

// Register registers all collectors with the given registerer once.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			sessionsStarted,
			sessionsCompleted,
			responsesTotal,
			scoringDuration,
			finalScore,
		)
	})
}

// RecordSessionStarted records a started session.
func RecordSessionStarted(category, difficulty string) {
	sessionsStarted.WithLabelValues(category, difficulty).Inc()
}

// RecordSessionCompleted records a completed session and its average score.
func RecordSessionCompleted(category string, averageScore float64) {
	sessionsCompleted.WithLabelValues(category).Inc()
	finalScore.Observe(averageScore)
}

// RecordResponse records a question outcome.
func RecordResponse(outcome string) {
	responsesTotal.WithLabelValues(outcome).Inc()
}

// RecordScoring records the duration of a scoring call.
func RecordScoring(provider string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scoringDuration.WithLabelValues(provider, status).Observe(d.Seconds())
}
