package axioms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyRowsReportsAllNamesInOrder(t *testing.T) {
	triggered := map[string]int{"a": 4, "b": 0}
	satisfied := map[string]int{"a": 3, "b": 0}

	rows := tallyRows([]string{"a", "b", "c"}, triggered, satisfied)
	require.Len(t, rows, 3)

	assert.Equal(t, "a", rows[0].Rule)
	require.NotNil(t, rows[0].SatisfactionRate)
	assert.InDelta(t, 0.75, *rows[0].SatisfactionRate, 1e-9)

	assert.Equal(t, "b", rows[1].Rule)
	assert.Nil(t, rows[1].SatisfactionRate, "zero triggered pairs must report an undefined rate, not zero")

	assert.Equal(t, "c", rows[2].Rule)
	assert.Equal(t, 0, rows[2].TriggeredPairs)
	assert.Nil(t, rows[2].SatisfactionRate)
}
