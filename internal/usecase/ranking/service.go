package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/taskmatch/internal/domain"
	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
)

// Service ranks candidates against a task by TF-IDF cosine similarity.
// It keeps no per-request state and is safe for concurrent use.
type Service struct {
	vectorizer *Vectorizer
}

// New creates a ranking service with the default tokenizer.
func New() *Service {
	return &Service{vectorizer: NewVectorizer(NewTokenizer(DefaultMinTokenLength))}
}

// WithMinTokenLength overrides the minimum token length used when vectorizing.
func (s *Service) WithMinTokenLength(n int) *Service {
	s.vectorizer = NewVectorizer(NewTokenizer(n))
	return s
}

// Rank scores every candidate against task and returns them best match first.
// Candidates with equal scores keep their input order.
func (s *Service) Rank(
	ctx context.Context, task string, candidates []candidate.Candidate,
) (recommendation.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return recommendation.Recommendation{}, fmt.Errorf("rank: %w", err)
	}

	corpus, err := BuildCorpus(task, candidates)
	if err != nil {
		return recommendation.Recommendation{}, err
	}

	matrix := s.vectorizer.FitTransform(corpus.Documents())
	taskVec := matrix.Row(0)

	scored := make([]candidate.Scored, len(candidates))
	for i, c := range candidates {
		scored[i] = candidate.NewScored(c, Cosine(taskVec, matrix.Row(i+1)))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score() > scored[j].Score()
	})

	return recommendation.New(task, scored, matrix.VocabularySize()), nil
}

const canaryTask = "golang backend services"

// HealthCheck ranks a fixed canary request and verifies the expected winner.
func (s *Service) HealthCheck(ctx context.Context) error {
	canary := []candidate.Candidate{
		candidate.New("canary-designer", "designer", []string{"graphic", "design"}),
		candidate.New("canary-engineer", "engineer", []string{"golang", "backend"}),
	}
	rec, err := s.Rank(ctx, canaryTask, canary)
	if err != nil {
		return fmt.Errorf("rank canary: %w", err)
	}
	items := rec.Items()
	if len(items) != len(canary) || items[0].ID() != "canary-engineer" || items[1].Score() != 0 {
		return domain.ErrRankerUnhealthy
	}
	return nil
}
