package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseRankFloatDescending(t *testing.T) {
	scores := map[string]float64{"a": 3.0, "b": 1.0, "c": 3.0, "d": 2.0}
	ranks := DenseRankFloat(scores, true)

	assert.Equal(t, 1, ranks["a"])
	assert.Equal(t, 1, ranks["c"])
	assert.Equal(t, 2, ranks["d"])
	assert.Equal(t, 3, ranks["b"])
}

func TestDenseRankFloatAscending(t *testing.T) {
	scores := map[string]float64{"a": 3.0, "b": 1.0}
	ranks := DenseRankFloat(scores, false)

	assert.Equal(t, 1, ranks["b"])
	assert.Equal(t, 2, ranks["a"])
}

func TestDenseRankIntTies(t *testing.T) {
	scores := map[int]int{1: 5, 2: 5, 3: 9}
	ranks := DenseRankInt(scores, true)

	assert.Equal(t, 1, ranks[3])
	assert.Equal(t, 2, ranks[1])
	assert.Equal(t, 2, ranks[2])
}

func TestDenseRankByEmpty(t *testing.T) {
	ranks := DenseRankBy([]int{}, func(a, b int) int { return a - b })
	assert.Empty(t, ranks)
}
