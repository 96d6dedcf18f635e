package candidate

import "strings"

// Candidate is a person that can be recommended for a task.
// The ID is opaque and carried through ranking unchanged.
type Candidate struct {
	id     string
	name   string
	skills []string
}

// New creates a candidate. The skill slice is copied.
func New(id, name string, skills []string) Candidate {
	cp := make([]string, len(skills))
	copy(cp, skills)
	return Candidate{id: id, name: name, skills: cp}
}

// ID returns the opaque candidate identifier.
func (c Candidate) ID() string { return c.id }

// Name returns the display name.
func (c Candidate) Name() string { return c.name }

// Skills returns the skill list in its original order.
func (c Candidate) Skills() []string { return c.skills }

// SkillText joins the skills into a single whitespace-separated document.
func (c Candidate) SkillText() string { return strings.Join(c.skills, " ") }

// Scored is a candidate paired with its similarity to a task, in [0, 1].
type Scored struct {
	Candidate
	score float64
}

// NewScored attaches a score to a candidate.
func NewScored(c Candidate, score float64) Scored {
	return Scored{Candidate: c, score: score}
}

// Score returns the similarity score.
func (s Scored) Score() float64 { return s.score }
