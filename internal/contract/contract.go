// Package contract provides interfaces and shared configuration types for
// the engine's internal architecture.
package contract

import "github.com/coopmetrics/coopmetrics/schema"

// TableReader reads a validated game table from a path, returning one row
// per (scenario_id, game_id, coalition) observation.
type TableReader interface {
	ReadGameTable(cfg *InputConfig) ([]GameTableRow, error)
}

// TableWriter writes the two result tables and the axiom summaries to the
// configured output location and format.
type TableWriter interface {
	WriteIndividuals(rows []schema.IndividualRow, path string, format schema.OutputFormat) error
	WriteCoalitions(rows []schema.CoalitionRow, path string, format schema.OutputFormat) error
	WriteAxioms(rows []schema.AxiomRow, path string) error
}

// GameTableRow is one raw row of the input table, after coalition-cell
// decoding but before grouping into Game objects.
type GameTableRow struct {
	ScenarioID string
	GameID     string
	Coalition  schema.Coalition
	Value      *float64
	Rank       *int
}
