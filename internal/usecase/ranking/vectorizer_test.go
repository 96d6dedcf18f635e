package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestFitTransform_Weights(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	m := v.FitTransform([]string{"go go rust", "go", "java"})

	require.Equal(t, []string{"go", "java", "rust"}, m.Vocabulary())
	require.Equal(t, 3, m.Len())

	idfGo := math.Log(4.0/3.0) + 1
	idfRust := math.Log(4.0/2.0) + 1
	rawGo, rawRust := 2*idfGo, idfRust
	norm := math.Sqrt(rawGo*rawGo + rawRust*rawRust)

	row := m.Row(0)
	assert.InDelta(t, rawGo/norm, row[0], eps)
	assert.InDelta(t, 0, row[1], eps)
	assert.InDelta(t, rawRust/norm, row[2], eps)

	assert.InDeltaSlice(t, []float64{1, 0, 0}, m.Row(1), eps)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, m.Row(2), eps)
}

func TestFitTransform_SameDimensionalityAndUnitNorm(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	m := v.FitTransform([]string{"needs python backend", "python", "design figma", ""})

	for i := 0; i < m.Len(); i++ {
		row := m.Row(i)
		assert.Len(t, row, m.VocabularySize())
		if row.IsZero() {
			continue
		}
		assert.InDelta(t, 1.0, row.Norm(), eps)
	}
	assert.True(t, m.Row(3).IsZero(), "empty document must be the zero vector")
}

func TestFitTransform_UbiquitousTermStillWeighted(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	m := v.FitTransform([]string{"go", "go", "go"})

	require.Equal(t, 1, m.VocabularySize())
	for i := 0; i < m.Len(); i++ {
		assert.InDelta(t, 1.0, m.Row(i)[0], eps)
	}
}

func TestFitTransform_RareTermOutweighsCommonTerm(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	m := v.FitTransform([]string{"go kubernetes", "go", "go"})

	row := m.Row(0)
	goIdx, k8sIdx := 0, 1
	require.Equal(t, "go", m.Vocabulary()[goIdx])
	require.Equal(t, "kubernetes", m.Vocabulary()[k8sIdx])
	assert.Greater(t, row[k8sIdx], row[goIdx])
}

func TestFitTransform_EmptyVocabulary(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	m := v.FitTransform([]string{"a b c", "x", "y z", ""})

	assert.Zero(t, m.VocabularySize())
	require.Equal(t, 4, m.Len())
	for i := 0; i < m.Len(); i++ {
		assert.True(t, m.Row(i).IsZero())
		assert.Zero(t, m.Row(i).Norm())
	}
}

func TestFitTransform_VocabularyIsPerCall(t *testing.T) {
	v := NewVectorizer(NewTokenizer(DefaultMinTokenLength))
	first := v.FitTransform([]string{"python backend", "python"})
	second := v.FitTransform([]string{"design", "figma"})

	assert.Equal(t, []string{"backend", "python"}, first.Vocabulary())
	assert.Equal(t, []string{"design", "figma"}, second.Vocabulary())
}
