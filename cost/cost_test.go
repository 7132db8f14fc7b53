package cost_test

import (
	"testing"

	"github.com/katalvlaran/typealign/cost"
	"github.com/stretchr/testify/assert"
)

// TestAdd_Saturates verifies that sums never wrap past Infinite.
func TestAdd_Saturates(t *testing.T) {
	cases := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"Finite", 3, 4, 7},
		{"ZeroToInfinite", cost.Infinite, 0, cost.Infinite},
		{"InfinitePlusOne", cost.Infinite, 1, cost.Infinite},
		{"InfinitePlusMismatch", cost.Infinite, cost.Mismatch, cost.Infinite},
		{"NearMax", cost.Infinite - 1, 5, cost.Infinite},
		{"BothInfinite", cost.Infinite, cost.Infinite, cost.Infinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cost.Add(tc.a, tc.b))
		})
	}
}

// TestReplace checks the match/mismatch split, including multi-rune units.
func TestReplace(t *testing.T) {
	assert.Equal(t, cost.Match, cost.Replace("a", "a"))
	assert.Equal(t, cost.Mismatch, cost.Replace("a", "b"))
	assert.Equal(t, cost.Match, cost.Replace("é", "é"))
	assert.Equal(t, cost.Mismatch, cost.Replace("e", "é"), "base letter alone is a different unit")
}

// TestMin3 covers every position of the minimum.
func TestMin3(t *testing.T) {
	assert.Equal(t, uint32(1), cost.Min3(1, 2, 3))
	assert.Equal(t, uint32(1), cost.Min3(2, 1, 3))
	assert.Equal(t, uint32(1), cost.Min3(3, 2, 1))
	assert.Equal(t, cost.Infinite, cost.Min3(cost.Infinite, cost.Infinite, cost.Infinite))
}
