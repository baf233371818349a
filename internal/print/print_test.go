package print

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coopmetrics/coopmetrics/schema"
)

// captureStdout redirects os.Stdout to a temp file for the duration of fn,
// since every renderer here writes straight to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	buf := make([]byte, 64*1024)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestIndividualsRendersWithoutError(t *testing.T) {
	shapley := 1.0
	rows := []schema.IndividualRow{{ScenarioID: "s", GameID: "g", Player: 0, Shapley: &shapley}}

	out := captureStdout(t, func() {
		require.NoError(t, Individuals(rows))
	})
	require.Contains(t, out, "shapley")
}

func TestCoalitionsRendersWithoutError(t *testing.T) {
	rows := []schema.CoalitionRow{{ScenarioID: "s", GameID: "g", Coalition: "{0}", Size: 1}}

	out := captureStdout(t, func() {
		require.NoError(t, Coalitions(rows))
	})
	require.Contains(t, out, "coalition")
}

func TestAxiomsRendersNaNWhenRateUndefined(t *testing.T) {
	rows := []schema.AxiomRow{{Rule: "r1", TriggeredPairs: 0, SatisfiedPairs: 0}}

	out := captureStdout(t, func() {
		require.NoError(t, Axioms("swimmy", rows))
	})
	require.Contains(t, out, "NaN")
}
