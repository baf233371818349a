package ioformat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

func TestTableIOReadGameTableRejectsUnsupportedFormat(t *testing.T) {
	io := TableIO{}
	_, err := io.ReadGameTable(&contract.InputConfig{Format: "xlsx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestTableIOReadGameTableDefaultsToCSV(t *testing.T) {
	path := writeTempCSV(t, "scenario_id,game_id,coalition\ns1,g1,{0}\n")
	io := TableIO{}

	rows, err := io.ReadGameTable(&contract.InputConfig{
		Path:            path,
		ScenarioColumn:  "scenario_id",
		GameColumn:      "game_id",
		CoalitionColumn: "coalition",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestTableIOWriteIndividualsDispatchesByFormat(t *testing.T) {
	io := TableIO{}
	rows := []schema.IndividualRow{{ScenarioID: "s", GameID: "g", Player: 0}}

	csvPath := filepath.Join(t.TempDir(), "individuals.csv")
	require.NoError(t, io.WriteIndividuals(rows, csvPath, schema.CSVOut))

	xlsxPath := filepath.Join(t.TempDir(), "individuals.xlsx")
	require.NoError(t, io.WriteIndividuals(rows, xlsxPath, schema.XLSXOut))

	err := io.WriteIndividuals(rows, "", schema.OutputFormat("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestTableIOWriteAxiomsAlwaysCSV(t *testing.T) {
	io := TableIO{}
	path := filepath.Join(t.TempDir(), "axioms.csv")
	require.NoError(t, io.WriteAxioms([]schema.AxiomRow{{Rule: "r"}}, path))
}
