package scoring

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

// DefaultTimeout bounds a single scoring call
const DefaultTimeout = 10 * time.Second

// Provider grades one answer to one question
type Provider interface {
	Score(ctx context.Context, question entities.Question, answer string) (*entities.ScoreResult, error)
}

// Guard wraps a provider with a fixed timeout, range validation and metrics.
// Every failure it returns wraps usecase errors.ErrScoringUnavailable.
type Guard struct {
	inner   Provider
	name    string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGuard creates a guarded provider. A non-positive timeout uses DefaultTimeout.
func NewGuard(inner Provider, name string, timeout time.Duration, logger *zap.Logger) *Guard {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{inner: inner, name: name, timeout: timeout, logger: logger}
}

type scoreOutcome struct {
	result *entities.ScoreResult
	err    error
}

// Score calls the wrapped provider within the timeout. A provider that ignores ctx
// is abandoned once the timeout passes; its late result is dropped.
func (g *Guard) Score(ctx context.Context, question entities.Question, answer string) (*entities.ScoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan scoreOutcome, 1)
	go func() {
		result, err := g.inner.Score(ctx, question, answer)
		done <- scoreOutcome{result: result, err: err}
	}()

	var (
		result *entities.ScoreResult
		err    error
	)
	select {
	case out := <-done:
		result, err = out.result, out.err
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err == nil && result == nil {
		err = fmt.Errorf("provider returned no result")
	}
	if err == nil {
		err = result.Validate()
	}
	metrics.RecordScoring(g.name, time.Since(start), err)

	if err != nil {
		g.logger.Warn("scoring failed",
			zap.String("provider", g.name),
			zap.String("question_id", question.ID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %v", usecaseErrors.ErrScoringUnavailable, g.name, err)
	}
	return result, nil
}
