package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

func twoPlayerGame(scenario, id string) *schema.Game {
	values := map[schema.Coalition]float64{
		schema.CoalitionOf(0):    1,
		schema.CoalitionOf(1):    2,
		schema.CoalitionOf(0, 1): 6,
	}
	return &schema.Game{
		ScenarioID: scenario,
		GameID:     id,
		Players:    []int{0, 1},
		Coalitions: []schema.Coalition{schema.CoalitionOf(0), schema.CoalitionOf(1), schema.CoalitionOf(0, 1)},
		Values:     values,
		GameType:   schema.TUGame,
	}
}

func TestAssembleComputesShapleyByDefault(t *testing.T) {
	cfg := &contract.Config{}
	cfg.Indices.Shapley.Exact = true

	games := []*schema.Game{twoPlayerGame("s", "g1")}
	result, err := Assemble(games, cfg)
	require.NoError(t, err)

	require.Len(t, result.Individuals, 2)
	for _, row := range result.Individuals {
		require.NotNil(t, row.Shapley)
		require.NotNil(t, row.ShapleyRank)
		assert.Nil(t, row.Banzhaf, "banzhaf was not enabled")
	}
}

func TestAssembleSynergyPopulatesCoalitionRows(t *testing.T) {
	cfg := &contract.Config{}
	cfg.Indices.Shapley.Exact = true
	cfg.Indices.Synergy.Enabled = true

	games := []*schema.Game{twoPlayerGame("s", "g1")}
	result, err := Assemble(games, cfg)
	require.NoError(t, err)

	found := false
	for _, row := range result.Coalitions {
		if row.Coalition == schema.CoalitionOf(0, 1).String() {
			require.NotNil(t, row.Synergy)
			assert.InDelta(t, 3.0, *row.Synergy, 1e-9)
			found = true
		}
	}
	assert.True(t, found, "the full coalition must appear in the coalitions table")
}

func TestAssembleRejectsOversizedGameWhenExactRequested(t *testing.T) {
	cfg := &contract.Config{}
	cfg.Indices.Shapley.Exact = true

	players := make([]int, schema.MaxPlayers+1)
	for i := range players {
		players[i] = i
	}
	g := &schema.Game{ScenarioID: "s", GameID: "huge", Players: players, Values: map[schema.Coalition]float64{}}

	_, err := Assemble([]*schema.Game{g}, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrGameSizeExceeded)
}

func TestAssembleAllowsOversizedGameWithMonteCarloOnly(t *testing.T) {
	cfg := &contract.Config{}
	cfg.Indices.Shapley.Exact = false
	cfg.Indices.Shapley.MonteCarloSamples = 50

	players := make([]int, schema.MaxPlayers+1)
	for i := range players {
		players[i] = i
	}
	values := map[schema.Coalition]float64{}
	g := &schema.Game{ScenarioID: "s", GameID: "huge", Players: players, Values: values}

	result, err := Assemble([]*schema.Game{g}, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Individuals, len(players))
}

func TestAssembleSeedOverrideChangesMonteCarloEstimate(t *testing.T) {
	players := []int{0, 1, 2, 3}
	coalitions := combi.PowerSet(players)
	values := map[schema.Coalition]float64{}
	for _, c := range coalitions {
		values[c] = float64(c.Size()) * float64(c.Size())
	}
	game := func() *schema.Game {
		return &schema.Game{
			ScenarioID: "s", GameID: "g", Players: players,
			Coalitions: coalitions, Values: values, GameType: schema.TUGame,
		}
	}

	run := func(seed int64) map[int]*float64 {
		cfg := &contract.Config{}
		cfg.Indices.Shapley.MonteCarloSamples = 3
		cfg.Seed = seed

		result, err := Assemble([]*schema.Game{game()}, cfg)
		require.NoError(t, err)
		out := make(map[int]*float64, len(result.Individuals))
		for _, row := range result.Individuals {
			out[row.Player] = row.Shapley
		}
		return out
	}

	a := run(0)
	b := run(99)

	differs := false
	for player, av := range a {
		bv := b[player]
		require.NotNil(t, av)
		require.NotNil(t, bv)
		if *av != *bv {
			differs = true
		}
	}
	assert.True(t, differs, "a non-zero seed override must perturb the monte-carlo estimate")
}

func TestAssembleOrdinalWarnsWhenGameHasNoRanks(t *testing.T) {
	cfg := &contract.Config{}
	cfg.Indices.Shapley.Exact = true
	cfg.Indices.Ordinal.Enabled = true

	games := []*schema.Game{twoPlayerGame("s", "g1")}
	result, err := Assemble(games, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}
