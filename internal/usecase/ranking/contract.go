package ranking

import (
	"context"

	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
)

// Ranker orders candidates by relevance to a task.
type Ranker interface {
	Rank(ctx context.Context, task string, candidates []candidate.Candidate) (recommendation.Recommendation, error)
}

// HealthChecker is implemented by rankers that can verify themselves.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

var (
	_ Ranker        = (*Service)(nil)
	_ HealthChecker = (*Service)(nil)
	_ Ranker        = (*InstrumentedRanker)(nil)
	_ HealthChecker = (*InstrumentedRanker)(nil)
)
