package ordinal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coopmetrics/coopmetrics/schema"
)

func TestDefaultGroupTargetsSizesAndCount(t *testing.T) {
	targets := DefaultGroupTargets([]int{0, 1, 2})
	// Sizes 2 and 3 out of 3: C(3,2)+C(3,3) = 3+1 = 4.
	assert.Len(t, targets, 4)
	for _, target := range targets {
		assert.GreaterOrEqual(t, target.Size(), 2)
	}
}

func TestGroupBanzhafScoresCoversEveryTarget(t *testing.T) {
	g := rankedGame()
	q := BuildQuotient(g)
	targets := DefaultGroupTargets(g.Players)
	scores := GroupBanzhafScores(g, q, targets)

	assert.Len(t, scores, len(targets))
}

func TestGroupLexCelMatchesGroupTheta(t *testing.T) {
	g := rankedGame()
	q := BuildQuotient(g)
	targets := DefaultGroupTargets(g.Players)

	thetas, ranks := GroupLexCel(q, targets)
	for _, target := range targets {
		assert.Equal(t, GroupTheta(q, target), thetas[target])
		_, ok := ranks[target]
		assert.True(t, ok)
	}
}

func TestGroupMarginalZeroWhenUndefined(t *testing.T) {
	g := rankedGame()
	q := BuildQuotient(g)
	undefined := schema.CoalitionOf(5)
	assert.Equal(t, 0, GroupMarginal(q, undefined, schema.CoalitionOf(0)))
}
