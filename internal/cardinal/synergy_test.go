package cardinal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coopmetrics/coopmetrics/schema"
)

func TestSynergyOfEmptyCoalitionIsZero(t *testing.T) {
	g := gloveGame()
	g.Coalitions = []schema.Coalition{0}
	syn := Synergy(g)
	assert.Equal(t, 0.0, syn[0])
}

func TestSynergyPositiveWhenPairBeatsSingles(t *testing.T) {
	values := map[schema.Coalition]float64{
		schema.CoalitionOf(0):    1,
		schema.CoalitionOf(1):    1,
		schema.CoalitionOf(0, 1): 5,
	}
	pair := schema.CoalitionOf(0, 1)
	g := &schema.Game{
		Players:    []int{0, 1},
		Coalitions: []schema.Coalition{schema.CoalitionOf(0), schema.CoalitionOf(1), pair},
		Values:     values,
	}
	syn := Synergy(g)
	assert.InDelta(t, 3.0, syn[pair], 1e-9)
}
