package ranking

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/taskmatch/internal/domain"
	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
)

// Corpus is the ordered document set of a single ranking call.
// Document 0 is the task; document i+1 is the skill text of candidate i.
type Corpus struct {
	docs []string
}

// BuildCorpus assembles the task and candidate skill texts into one corpus.
func BuildCorpus(task string, candidates []candidate.Candidate) (Corpus, error) {
	if strings.TrimSpace(task) == "" {
		return Corpus{}, fmt.Errorf("%w: task description is required", domain.ErrInvalidInput)
	}
	if len(candidates) == 0 {
		return Corpus{}, fmt.Errorf("%w: at least one candidate is required", domain.ErrInvalidInput)
	}

	docs := make([]string, 0, len(candidates)+1)
	docs = append(docs, task)
	for _, c := range candidates {
		docs = append(docs, c.SkillText())
	}
	return Corpus{docs: docs}, nil
}

// Documents returns all documents, task first.
func (c Corpus) Documents() []string { return c.docs }

// Len returns the number of documents.
func (c Corpus) Len() int { return len(c.docs) }

// Task returns the task document.
func (c Corpus) Task() string {
	if len(c.docs) == 0 {
		return ""
	}
	return c.docs[0]
}
