package cardinal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanzhafSymmetryOnGloveGame(t *testing.T) {
	g := gloveGame()
	beta := Banzhaf(g, false)
	assert.InDelta(t, beta[0], beta[1], 1e-9)
}

func TestBanzhafNormalizeSumsToOneInAbsoluteValue(t *testing.T) {
	g := gloveGame()
	norm := Banzhaf(g, true)

	total := 0.0
	for _, v := range norm {
		total += v
	}
	// Every raw value here is non-negative, so the normalized values should
	// sum to 1, not merely have absolute values summing to 1.
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestIsDegenerateOnAllZero(t *testing.T) {
	assert.True(t, IsDegenerate(map[int]float64{0: 0, 1: 0}))
	assert.False(t, IsDegenerate(map[int]float64{0: 0, 1: 1}))
}

func TestBanzhafEmptyGame(t *testing.T) {
	g := gloveGame()
	g.Players = nil
	assert.Empty(t, Banzhaf(g, false))
}
