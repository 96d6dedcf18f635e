package ranking

import (
	"math"
	"sort"
)

// Vector is a dense term-weight vector over a call-scoped vocabulary.
type Vector []float64

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether every weight is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Matrix holds the TF-IDF vectors of one corpus.
// Row i corresponds to document i; all rows share the vocabulary's dimensionality.
type Matrix struct {
	vocabulary []string
	rows       []Vector
}

// Vocabulary returns the sorted distinct terms of the corpus.
func (m Matrix) Vocabulary() []string { return m.vocabulary }

// VocabularySize returns the vector dimensionality.
func (m Matrix) VocabularySize() int { return len(m.vocabulary) }

// Len returns the number of rows.
func (m Matrix) Len() int { return len(m.rows) }

// Row returns the vector of document i.
func (m Matrix) Row(i int) Vector { return m.rows[i] }

// Vectorizer computes TF-IDF weights for a corpus.
// It holds no state between calls: each FitTransform builds a fresh vocabulary.
type Vectorizer struct {
	tokenizer Tokenizer
}

// NewVectorizer creates a vectorizer using the given tokenizer.
func NewVectorizer(tokenizer Tokenizer) *Vectorizer {
	return &Vectorizer{tokenizer: tokenizer}
}

// FitTransform builds the vocabulary of docs and returns one L2-normalized
// TF-IDF vector per document.
//
//	tf(d, t)  = count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(d, t)   = tf(d, t) * idf(t)
//
// If no document yields a token, every row is an empty (zero) vector.
func (v *Vectorizer) FitTransform(docs []string) Matrix {
	n := len(docs)
	counts := make([]map[string]int, n)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range v.tokenizer.Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			docFreq[term]++
		}
		counts[i] = tf
	}

	vocabulary := make([]string, 0, len(docFreq))
	for term := range docFreq {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	column := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	for j, term := range vocabulary {
		column[term] = j
		idf[j] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	rows := make([]Vector, n)
	for i, tf := range counts {
		row := make(Vector, len(vocabulary))
		for term, c := range tf {
			j := column[term]
			row[j] = float64(c) * idf[j]
		}
		normalize(row)
		rows[i] = row
	}

	return Matrix{vocabulary: vocabulary, rows: rows}
}

// normalize scales v to unit length in place. Zero vectors are left untouched.
func normalize(v Vector) {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}
