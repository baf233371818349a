package cardinal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coopmetrics/coopmetrics/schema"
)

func TestDefaultInteractionSubsetsSizesAndCount(t *testing.T) {
	players := []int{0, 1, 2, 3}
	subsets := DefaultInteractionSubsets(players)

	// Sizes 2, 3, 4 out of 4 players: C(4,2)+C(4,3)+C(4,4) = 6+4+1 = 11.
	assert.Len(t, subsets, 11)
	for _, s := range subsets {
		assert.GreaterOrEqual(t, s.Size(), 2)
	}
}

func TestDefaultInteractionSubsetsExcludesSinglesAndEmpty(t *testing.T) {
	subsets := DefaultInteractionSubsets([]int{0, 1})
	assert.Len(t, subsets, 1)
	assert.Equal(t, schema.CoalitionOf(0, 1), subsets[0])
}

func TestShapleyInteractionPairReducesToMarginalDifference(t *testing.T) {
	// For a 2-player game, the pairwise Shapley interaction index reduces to
	// v(12) - v(1) - v(2) + v(empty).
	values := map[schema.Coalition]float64{
		schema.CoalitionOf(0):    2,
		schema.CoalitionOf(1):    3,
		schema.CoalitionOf(0, 1): 8,
	}
	g := &schema.Game{Players: []int{0, 1}, Values: values}
	pair := schema.CoalitionOf(0, 1)

	result := ShapleyInteraction(g, []schema.Coalition{pair})
	assert.InDelta(t, 8-2-3+0, result[pair], 1e-9)
}

func TestBanzhafInteractionPairReducesToMarginalDifference(t *testing.T) {
	values := map[schema.Coalition]float64{
		schema.CoalitionOf(0):    2,
		schema.CoalitionOf(1):    3,
		schema.CoalitionOf(0, 1): 8,
	}
	g := &schema.Game{Players: []int{0, 1}, Values: values}
	pair := schema.CoalitionOf(0, 1)

	result := BanzhafInteraction(g, []schema.Coalition{pair})
	assert.InDelta(t, 8-2-3+0, result[pair], 1e-9)
}
