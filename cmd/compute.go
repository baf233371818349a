package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/coopmetrics/coopmetrics/internal/assembler"
	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/internal/diag"
	"github.com/coopmetrics/coopmetrics/internal/gamemodel"
	"github.com/coopmetrics/coopmetrics/internal/ioformat"
	"github.com/coopmetrics/coopmetrics/internal/print"
	"github.com/coopmetrics/coopmetrics/schema"
)

// computeCmd reads the input game table, computes every configured index,
// and writes the result tables and axiom summaries.
var computeCmd = &cobra.Command{
	Use:     "compute",
	Short:   "Compute contribution indices and axiom summaries from a coalition game table.",
	Long:    `Read a table of coalition worths and/or ranks, compute the configured cardinal and ordinal indices, and write the individuals/coalitions result tables plus any enabled axiom summaries.`,
	PreRunE: sharedSetup,
	RunE:    runCompute,
}

func runCompute(_ *cobra.Command, _ []string) error {
	io := ioformat.TableIO{}

	rows, err := io.ReadGameTable(&cfg.Input)
	if err != nil {
		return err
	}

	if cfg.Ranking.Mode != string(schema.NoRanking) {
		if err := gamemodel.AddRankFromValue(rows, cfg.Ranking.Mode, cfg.Ranking.BinWidth, cfg.Ranking.Descending); err != nil {
			return err
		}
	}

	games, err := gamemodel.BuildGamesFromTable(rows, cfg.Input.Players, schema.GameType(cfg.Input.GameType))
	if err != nil {
		return err
	}

	if n := distinctScenarios(games); n > 1 {
		diag.Warn(fmt.Sprintf("run %s: processing %d scenarios across %d games", uuid.New().String(), n, len(games)))
	}

	result, err := assembler.Assemble(games, cfg)
	if err != nil {
		return err
	}
	diag.PrintWarnings(result.Warnings)

	outputDir, err := contract.ResolveOutputDir(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", schema.ErrInternal)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, schema.ErrInternal)
	}

	format := schema.OutputFormat(cfg.Output.Format)
	if format == schema.TableOut {
		return printResults(result)
	}

	individualsPath := filepath.Join(outputDir, "individuals."+string(format))
	coalitionsPath := filepath.Join(outputDir, "coalitions."+string(format))

	if err := io.WriteIndividuals(result.Individuals, individualsPath, format); err != nil {
		return err
	}
	if err := io.WriteCoalitions(result.Coalitions, coalitionsPath, format); err != nil {
		return err
	}
	if cfg.Axioms.Swimmy.Enabled {
		if err := io.WriteAxioms(result.Swimmy, filepath.Join(outputDir, "axioms_swimmy.csv")); err != nil {
			return err
		}
	}
	if cfg.Axioms.SADA.Enabled {
		if err := io.WriteAxioms(result.SADA, filepath.Join(outputDir, "axioms_sada.csv")); err != nil {
			return err
		}
	}

	return nil
}

// distinctScenarios counts the distinct scenario ids across games, for
// tagging a batch run when it spans more than one scenario.
func distinctScenarios(games []*schema.Game) int {
	seen := make(map[string]bool)
	for _, g := range games {
		seen[g.ScenarioID] = true
	}
	return len(seen)
}

// printResults renders every table to the terminal instead of writing
// files, for the human-readable "table" output format.
func printResults(result *assembler.Result) error {
	if err := print.Individuals(result.Individuals); err != nil {
		return err
	}
	if err := print.Coalitions(result.Coalitions); err != nil {
		return err
	}
	if result.Swimmy != nil {
		if err := print.Axioms("swimmy", result.Swimmy); err != nil {
			return err
		}
	}
	if result.SADA != nil {
		if err := print.Axioms("sada", result.SADA); err != nil {
			return err
		}
	}
	return nil
}
