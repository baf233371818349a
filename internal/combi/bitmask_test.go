package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coopmetrics/coopmetrics/schema"
)

func TestSubsetsCountsMatchPowerSet(t *testing.T) {
	universe := schema.CoalitionOf(0, 1, 2)
	subsets := Subsets(universe)
	assert.Len(t, subsets, 8)

	seen := make(map[schema.Coalition]bool)
	for _, s := range subsets {
		assert.Equal(t, s, s&universe, "every subset must be contained in the universe")
		seen[s] = true
	}
	assert.Len(t, seen, 8, "subsets must be distinct")
}

func TestRestIsComplementWithinUniverse(t *testing.T) {
	universe := schema.CoalitionOf(0, 1, 2, 3)
	s := schema.CoalitionOf(1, 3)
	rest := Rest(universe, s)

	assert.Equal(t, schema.CoalitionOf(0, 2), rest)
	assert.Equal(t, universe, rest.Union(s))
	assert.Equal(t, schema.Coalition(0), rest&s)
}

func TestPowerSetIncludesEmptyAndFull(t *testing.T) {
	players := []int{2, 4}
	all := PowerSet(players)
	assert.Len(t, all, 4)

	var empty, full bool
	for _, c := range all {
		if c.Size() == 0 {
			empty = true
		}
		if c.Size() == len(players) {
			full = true
		}
	}
	assert.True(t, empty)
	assert.True(t, full)
}
