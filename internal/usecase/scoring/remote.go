package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/pkg/ai"
)

// Analyzer is the remote analysis call the remote scorer depends on
type Analyzer interface {
	Analyze(ctx context.Context, question, response string) (*ai.AnalyzeResponse, error)
}

// RemoteScorer grades answers through the analysis endpoint
type RemoteScorer struct {
	client     Analyzer
	maxRetries uint64
	logger     *zap.Logger
}

// NewRemoteScorer creates a remote scorer retrying transient failures up to maxRetries times
func NewRemoteScorer(client Analyzer, maxRetries uint64, logger *zap.Logger) *RemoteScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteScorer{client: client, maxRetries: maxRetries, logger: logger}
}

// Score calls the endpoint with exponential backoff. Client errors are not retried.
func (r *RemoteScorer) Score(ctx context.Context, question entities.Question, answer string) (*entities.ScoreResult, error) {
	var res *ai.AnalyzeResponse
	attempt := 0

	analyzeFn := func() error {
		attempt++
		out, err := r.client.Analyze(ctx, question.Text, answer)
		if err != nil {
			var statusErr *ai.StatusError
			if errors.As(err, &statusErr) && !statusErr.Temporary() {
				return backoff.Permanent(err)
			}
			r.logger.Debug("analysis attempt failed",
				zap.String("question_id", question.ID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		res = out
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)
	if err := backoff.Retry(analyzeFn, policy); err != nil {
		return nil, err
	}

	return toScoreResult(res), nil
}

func toScoreResult(res *ai.AnalyzeResponse) *entities.ScoreResult {
	return &entities.ScoreResult{
		ResponseID: res.ResponseID,
		ContentAnalysis: entities.ContentAnalysis{
			Clarity:      res.ContentAnalysis.Clarity,
			Completeness: res.ContentAnalysis.Completeness,
			Relevance:    res.ContentAnalysis.Relevance,
			Structure:    res.ContentAnalysis.Structure,
		},
		DeliveryAnalysis: entities.DeliveryAnalysis{
			Confidence:   res.DeliveryAnalysis.Confidence,
			Pace:         res.DeliveryAnalysis.Pace,
			Articulation: res.DeliveryAnalysis.Articulation,
		},
		Suggestions:  append([]string(nil), res.Suggestions...),
		OverallScore: res.OverallScore,
	}
}
