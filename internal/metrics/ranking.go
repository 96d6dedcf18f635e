package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking Prometheus metrics.
var (
	RankingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskmatch",
			Name:      "rankings_total",
			Help:      "Total number of ranking calls",
		},
		[]string{"status"}, // "ok" / "invalid_input" / "error"
	)

	RankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "taskmatch",
			Name:      "ranking_duration_seconds",
			Help:      "Ranking duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RankingCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "taskmatch",
			Name:      "ranking_candidates",
			Help:      "Number of candidates per ranking call",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	RankingVocabularySize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "taskmatch",
			Name:      "ranking_vocabulary_size",
			Help:      "Distinct terms in the corpus of a ranking call",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		},
	)

	RankingTopScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "taskmatch",
			Name:      "ranking_top_score",
			Help:      "Best similarity score of a ranking call",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

// Ranking status label values.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusError        = "error"
)

var rankingMetricsRegistered bool

// RegisterRankingMetrics registers Prometheus ranking metrics. Must be called once from main.
func RegisterRankingMetrics() {
	if rankingMetricsRegistered {
		return
	}
	prometheus.MustRegister(RankingsTotal)
	prometheus.MustRegister(RankingDuration)
	prometheus.MustRegister(RankingCandidates)
	prometheus.MustRegister(RankingVocabularySize)
	prometheus.MustRegister(RankingTopScore)
	rankingMetricsRegistered = true
}
