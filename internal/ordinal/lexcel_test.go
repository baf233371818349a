package ordinal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexCompareOrdering(t *testing.T) {
	assert.Equal(t, 1, LexCompare([]int{2, 0}, []int{1, 5}))
	assert.Equal(t, -1, LexCompare([]int{1, 5}, []int{2, 0}))
	assert.Equal(t, 0, LexCompare([]int{1, 2}, []int{1, 2}))
}

func TestThetaStringFormat(t *testing.T) {
	assert.Equal(t, "1,0,2", ThetaString([]int{1, 0, 2}))
	assert.Equal(t, "", ThetaString(nil))
}

func TestLexCelIsTotalOverAllPlayers(t *testing.T) {
	g := rankedGame()
	q := BuildQuotient(g)
	thetas, ranks := LexCel(g, q)

	assert.Len(t, thetas, g.N())
	assert.Len(t, ranks, g.N())
	for _, i := range g.Players {
		_, ok := thetas[i]
		assert.True(t, ok, "every player must receive a theta vector")
		_, ok = ranks[i]
		assert.True(t, ok, "every player must receive a lex-cel rank")
	}
}
