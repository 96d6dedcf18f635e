package ranking

import "math"

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// It is 0 when either vector has zero norm. Vectors of different length are
// compared over their common prefix.
func Cosine(a, b Vector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	for _, x := range a[n:] {
		normA += x * x
	}
	for _, x := range b[n:] {
		normB += x * x
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	s := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
