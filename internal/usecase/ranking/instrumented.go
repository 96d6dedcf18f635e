package ranking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/taskmatch/internal/domain"
	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
	logpkg "github.com/kailas-cloud/taskmatch/internal/logger"
	"github.com/kailas-cloud/taskmatch/internal/metrics"
)

// InstrumentedRanker wraps a Ranker with Prometheus metrics and logging.
type InstrumentedRanker struct {
	inner  Ranker
	logger *zap.Logger
}

// NewInstrumentedRanker wraps inner with observability.
func NewInstrumentedRanker(inner Ranker, logger *zap.Logger) *InstrumentedRanker {
	return &InstrumentedRanker{inner: inner, logger: logger}
}

// Rank delegates to the inner ranker and records the outcome.
func (r *InstrumentedRanker) Rank(
	ctx context.Context, task string, candidates []candidate.Candidate,
) (recommendation.Recommendation, error) {
	log := logpkg.FromContext(ctx, r.logger)
	start := time.Now()

	rec, err := r.inner.Rank(ctx, task, candidates)

	duration := time.Since(start)
	metrics.RankingDuration.Observe(duration.Seconds())

	if err != nil {
		status := metrics.StatusError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = metrics.StatusInvalidInput
			log.Debug("Ranking rejected", zap.Int("candidates", len(candidates)), zap.Error(err))
		} else {
			log.Error("Ranking failed",
				zap.Int("candidates", len(candidates)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		}
		metrics.RankingsTotal.WithLabelValues(status).Inc()
		return rec, err
	}

	metrics.RankingsTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.RankingCandidates.Observe(float64(rec.Len()))
	metrics.RankingVocabularySize.Observe(float64(rec.VocabularySize()))
	metrics.RankingTopScore.Observe(rec.TopScore())

	if rec.VocabularySize() == 0 {
		log.Info("Ranking produced an empty vocabulary, all scores are zero",
			zap.Int("candidates", rec.Len()),
		)
	}

	log.Debug("Ranking completed",
		zap.Int("candidates", rec.Len()),
		zap.Int("vocabulary_size", rec.VocabularySize()),
		zap.Float64("top_score", rec.TopScore()),
		zap.Duration("duration", duration),
	)

	return rec, nil
}

// HealthCheck delegates to the inner ranker when it supports self-checks.
func (r *InstrumentedRanker) HealthCheck(ctx context.Context) error {
	hc, ok := r.inner.(HealthChecker)
	if !ok {
		return nil
	}
	if err := hc.HealthCheck(ctx); err != nil {
		r.logger.Warn("Ranker health check failed", zap.Error(err))
		return err
	}
	return nil
}
