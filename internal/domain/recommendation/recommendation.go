package recommendation

import "github.com/kailas-cloud/taskmatch/internal/domain/candidate"

// Recommendation is the ranked outcome of matching one task against a candidate list.
type Recommendation struct {
	task           string
	items          []candidate.Scored
	vocabularySize int
}

// New creates a recommendation. items must already be sorted by score, descending.
func New(task string, items []candidate.Scored, vocabularySize int) Recommendation {
	return Recommendation{task: task, items: items, vocabularySize: vocabularySize}
}

// Task returns the task description the candidates were ranked against.
func (r Recommendation) Task() string { return r.task }

// Items returns the scored candidates, best match first.
func (r Recommendation) Items() []candidate.Scored { return r.items }

// Len returns the number of scored candidates.
func (r Recommendation) Len() int { return len(r.items) }

// VocabularySize returns the number of distinct terms seen while ranking.
// Zero means no candidate could share a term with the task.
func (r Recommendation) VocabularySize() int { return r.vocabularySize }

// TopScore returns the best score, or 0 for an empty recommendation.
func (r Recommendation) TopScore() float64 {
	if len(r.items) == 0 {
		return 0
	}
	return r.items[0].Score()
}
