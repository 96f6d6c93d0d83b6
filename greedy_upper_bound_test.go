package tedjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreedyUpperBoundIsAdmissible(t *testing.T) {
	// The upper bound must never be smaller than the exact TED.
	cases := [][2]string{
		{"{a{b}{c}}", "{a{b}{c}{d}}"},
		{"{a{b{c}}{d}}", "{a{x}{b{c}{d}}}"},
		{"{a}", "{b}"},
	}
	for _, c := range cases {
		a, b := indexPairOf(t, c[0], c[1])
		exact, _ := TreeEditDistance(a, b, UnitCostModel{})
		bound := GreedyUpperBound(a, b)
		assert.GreaterOrEqual(t, bound, exact, "bound must be >= exact TED for %v", c)
	}
}

func TestGreedyUpperBoundIdentity(t *testing.T) {
	a, b := indexPairOf(t, "{a{b}{c}}", "{a{b}{c}}")
	assert.Equal(t, 0.0, GreedyUpperBound(a, b))
}

func TestGreedyUpperBoundEmptyTree(t *testing.T) {
	dict := NewLabelDict()
	empty := IndexTree(nil, dict)
	b := IndexTree(mustParse(t, "{a{b}}"), dict)

	assert.Equal(t, float64(b.Size), GreedyUpperBound(empty, b))
	assert.Equal(t, float64(b.Size), GreedyUpperBound(b, empty))
}

func TestGreedyUpperBoundAncestorPreservation(t *testing.T) {
	// Two trees where the same label appears at positions with conflicting
	// ancestor relationships: the greedy mapping must reject the
	// structure-violating match and fall back to a looser (but still sound)
	// bound rather than producing an invalid mapping.
	a, b := indexPairOf(t, "{x{a}}", "{a{x}}")
	bound := GreedyUpperBound(a, b)
	exact, _ := TreeEditDistance(a, b, UnitCostModel{})
	assert.GreaterOrEqual(t, bound, exact)
}
