package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"identical", Vector{0.6, 0.8}, Vector{0.6, 0.8}, 1},
		{"scaled", Vector{1, 2, 3}, Vector{2, 4, 6}, 1},
		{"orthogonal", Vector{1, 0}, Vector{0, 1}, 0},
		{"partial overlap", Vector{1, 1}, Vector{1, 0}, 0.7071067811865475},
		{"first zero", Vector{0, 0}, Vector{1, 0}, 0},
		{"second zero", Vector{1, 0}, Vector{0, 0}, 0},
		{"both zero", Vector{0, 0}, Vector{0, 0}, 0},
		{"both empty", Vector{}, Vector{}, 0},
		{"nil", nil, nil, 0},
		{"length mismatch", Vector{1, 0, 1}, Vector{1}, 0.7071067811865475},
		{"negative clamped", Vector{1, 0}, Vector{-1, 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Cosine(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, eps)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
