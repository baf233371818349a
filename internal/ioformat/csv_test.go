package ioformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadCSVGameTableParsesValueAndRank(t *testing.T) {
	path := writeTempCSV(t, "scenario_id,game_id,coalition,value,rank\n"+
		"s1,g1,{0},1.5,2\n"+
		"s1,g1,\"{0,1}\",3,\n")

	cfg := &contract.InputConfig{
		Path:            path,
		ScenarioColumn:  "scenario_id",
		GameColumn:      "game_id",
		CoalitionColumn: "coalition",
		ValueColumn:     "value",
		RankColumn:      "rank",
	}

	rows, err := readCSVGameTable(cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "s1", rows[0].ScenarioID)
	assert.Equal(t, schema.CoalitionOf(0), rows[0].Coalition)
	require.NotNil(t, rows[0].Value)
	assert.InDelta(t, 1.5, *rows[0].Value, 1e-9)
	require.NotNil(t, rows[0].Rank)
	assert.Equal(t, 2, *rows[0].Rank)

	assert.Nil(t, rows[1].Rank, "an empty rank cell leaves Rank nil")
}

func TestReadCSVGameTableMissingColumnErrors(t *testing.T) {
	path := writeTempCSV(t, "scenario_id,game_id\ns1,g1\n")
	cfg := &contract.InputConfig{
		Path:            path,
		ScenarioColumn:  "scenario_id",
		GameColumn:      "game_id",
		CoalitionColumn: "coalition",
	}

	_, err := readCSVGameTable(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInputSchema)
}

func TestWriteCoalitionsCSVIncludesSynergyColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coalitions.csv")
	synergy := 2.5
	rows := []schema.CoalitionRow{
		{ScenarioID: "s", GameID: "g", Coalition: "{0,1}", Size: 2, Synergy: &synergy},
	}

	require.NoError(t, writeCoalitionsCSV(rows, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "synergy")
	assert.Contains(t, string(contents), "2.5")
}

func TestWriteAxiomsCSVRendersNaNForUndefinedRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axioms.csv")
	rows := []schema.AxiomRow{{Rule: "shapley_interaction", TriggeredPairs: 0, SatisfiedPairs: 0}}

	require.NoError(t, writeAxiomsCSV(rows, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "nan")
}
