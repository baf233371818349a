// Package assembler orchestrates the per-game index computations across the
// worker pool and assembles their results into the batch-level result
// tables and axiom summaries.
package assembler

import (
	"fmt"
	"math"

	"github.com/coopmetrics/coopmetrics/internal/axioms"
	"github.com/coopmetrics/coopmetrics/internal/cardinal"
	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/internal/diag"
	"github.com/coopmetrics/coopmetrics/internal/ordinal"
	"github.com/coopmetrics/coopmetrics/internal/worker"
	"github.com/coopmetrics/coopmetrics/schema"
)

// Result is the fully assembled batch output.
type Result struct {
	Individuals []schema.IndividualRow
	Coalitions  []schema.CoalitionRow
	Swimmy      []schema.AxiomRow
	SADA        []schema.AxiomRow
	Warnings    []diag.Warning
}

// gameBundle is one game's contribution to the batch, computed in isolation
// inside the worker pool so the parallel phase never touches shared state.
type gameBundle struct {
	individuals []schema.IndividualRow
	coalitions  []schema.CoalitionRow
	warnings    []diag.Warning
	swimmyRules []axioms.SynergyRule
	sadaRules   []axioms.SynergyRule
}

// Assemble computes every configured index for every game, then reduces the
// per-game axiom rule sets into batch-wide Swimmy/SADA satisfaction tallies.
// The axiom accumulation happens after the parallel phase completes, never
// inside a worker, since the accumulators are not safe for concurrent use.
func Assemble(games []*schema.Game, cfg *contract.Config) (*Result, error) {
	bundles, err := worker.Run(games, cfg.Workers, func(g *schema.Game) (gameBundle, error) {
		return processGame(g, cfg)
	})
	if err != nil {
		return nil, err
	}

	res := &Result{}

	swimmyAcc := axioms.NewSwimmyResult()
	swimmyRuleNames := resolveRuleNames(cfg.Axioms.Swimmy.Rules)
	sadaAcc := axioms.NewSADAResult()
	sadaRuleNames := resolveRuleNames(cfg.Axioms.SADA.Rules)

	for i, b := range bundles {
		res.Individuals = append(res.Individuals, b.individuals...)
		res.Coalitions = append(res.Coalitions, b.coalitions...)
		res.Warnings = append(res.Warnings, b.warnings...)

		if cfg.Axioms.Swimmy.Enabled {
			axioms.EvaluateSwimmy(games[i], b.swimmyRules, swimmyAcc)
		}
		if cfg.Axioms.SADA.Enabled {
			axioms.EvaluateSADA(games[i], b.sadaRules, sadaAcc)
		}
	}

	sortIndividuals(res.Individuals)
	sortCoalitions(res.Coalitions)

	if cfg.Axioms.Swimmy.Enabled {
		res.Swimmy = swimmyAcc.Rows(swimmyRuleNames)
	}
	if cfg.Axioms.SADA.Enabled {
		res.SADA = sadaAcc.Rows(sadaRuleNames)
	}
	for _, a := range []struct {
		name string
		rows []schema.AxiomRow
	}{{"swimmy", res.Swimmy}, {"sada", res.SADA}} {
		for _, row := range a.rows {
			if row.SatisfactionRate == nil {
				res.Warnings = append(res.Warnings, diag.Warning{
					Message: fmt.Sprintf("%s rule %s triggered no pairs; satisfaction rate reported as NaN", a.name, row.Rule),
				})
			}
		}
	}
	return res, nil
}

// processGame computes every index configured for g and shapes the results
// into the two result-row types, plus the axiom rule sets that can be built
// from what this game had enabled.
func processGame(g *schema.Game, cfg *contract.Config) (gameBundle, error) {
	var bundle gameBundle
	n := g.N()

	exactIndicesRequested := cfg.Indices.Shapley.Exact ||
		cfg.Indices.Banzhaf.Enabled || cfg.Indices.Synergy.Enabled ||
		cfg.Indices.Ordinal.Enabled || cfg.Indices.LexCel.Enabled ||
		cfg.Indices.Interactions.Enabled
	if n > schema.MaxPlayers && exactIndicesRequested {
		return bundle, fmt.Errorf("game (%s, %s) has %d players (max %d) with exact indices requested: %w",
			g.ScenarioID, g.GameID, n, schema.MaxPlayers, schema.ErrGameSizeExceeded)
	}

	shapley := computeShapley(g, cfg, &bundle.warnings)
	shapleyRanks := combi.DenseRankFloat(shapley, true)

	var banzhaf map[int]float64
	var banzhafRanks map[int]int
	if cfg.Indices.Banzhaf.Enabled {
		banzhaf, banzhafRanks = computeBanzhaf(g, cfg, &bundle.warnings)
	}

	var synergy map[schema.Coalition]float64
	if cfg.Indices.Synergy.Enabled {
		synergy = cardinal.Synergy(g)
	}

	var shapleyInt, banzhafInt map[schema.Coalition]float64
	if cfg.Indices.Interactions.Enabled {
		subsets := cardinal.DefaultInteractionSubsets(g.Players)
		if cfg.Indices.Interactions.Shapley {
			shapleyInt = cardinal.ShapleyInteraction(g, subsets)
		}
		if cfg.Indices.Interactions.Banzhaf {
			banzhafInt = cardinal.BanzhafInteraction(g, subsets)
		}
	}

	needsRanks := cfg.Indices.Ordinal.Enabled || cfg.Indices.LexCel.Enabled ||
		(cfg.Indices.Interactions.Enabled && (cfg.Indices.Interactions.GroupOrdinalBanzhaf || cfg.Indices.Interactions.GroupLexCel))

	var ordinalScores, ordinalRanks map[int]int
	var lexThetas map[int][]int
	var lexRanks map[int]int
	var groupBanzhaf map[schema.Coalition]int
	var groupThetas map[schema.Coalition][]int
	var groupLexRanks map[schema.Coalition]int

	if needsRanks {
		if !g.HasRanks() {
			bundle.warnings = append(bundle.warnings, diag.Warning{
				ScenarioID: g.ScenarioID,
				GameID:     g.GameID,
				Message:    "ordinal indices requested but game carries no ranks; skipping",
			})
		} else {
			q := ordinal.BuildQuotient(g)

			if cfg.Indices.Ordinal.Enabled {
				ordinalScores, ordinalRanks = ordinal.BanzhafScores(g, q)
			}
			if cfg.Indices.LexCel.Enabled {
				lexThetas, lexRanks = ordinal.LexCel(g, q)
			}
			if cfg.Indices.Interactions.Enabled {
				targets := ordinal.DefaultGroupTargets(g.Players)
				if cfg.Indices.Interactions.GroupOrdinalBanzhaf {
					groupBanzhaf = ordinal.GroupBanzhafScores(g, q, targets)
				}
				if cfg.Indices.Interactions.GroupLexCel {
					groupThetas, groupLexRanks = ordinal.GroupLexCel(q, targets)
				}
			}
		}
	}

	bundle.individuals = buildIndividualRows(g, shapley, shapleyRanks, banzhaf, banzhafRanks,
		ordinalScores, ordinalRanks, lexThetas, lexRanks)
	bundle.coalitions = buildCoalitionRows(g, synergy, shapleyInt, banzhafInt, groupBanzhaf, groupThetas, groupLexRanks)

	if shapleyInt != nil {
		bundle.swimmyRules = append(bundle.swimmyRules, axioms.NewShapleyInteractionRule(shapleyInt))
		bundle.sadaRules = append(bundle.sadaRules, axioms.NewShapleyInteractionRule(shapleyInt))
	}
	if banzhafInt != nil {
		bundle.swimmyRules = append(bundle.swimmyRules, axioms.NewBanzhafInteractionRule(banzhafInt))
		bundle.sadaRules = append(bundle.sadaRules, axioms.NewBanzhafInteractionRule(banzhafInt))
	}
	if groupBanzhaf != nil {
		bundle.swimmyRules = append(bundle.swimmyRules, axioms.NewGroupOrdinalBanzhafRule(groupBanzhaf))
		bundle.sadaRules = append(bundle.sadaRules, axioms.NewGroupOrdinalBanzhafRule(groupBanzhaf))
	}
	if groupLexRanks != nil {
		bundle.swimmyRules = append(bundle.swimmyRules, axioms.NewGroupLexcelRankRule(groupLexRanks))
		bundle.sadaRules = append(bundle.sadaRules, axioms.NewGroupLexcelRankRule(groupLexRanks))
	}
	bundle.swimmyRules = filterRules(bundle.swimmyRules, cfg.Axioms.Swimmy.Rules)
	bundle.sadaRules = filterRules(bundle.sadaRules, cfg.Axioms.SADA.Rules)

	return bundle, nil
}

// computeShapley computes the Shapley value, exactly or by Monte-Carlo
// sampling. The Monte-Carlo path also estimates each player's standard
// error across samples and warns when the largest one is not small
// relative to the spread of the estimates themselves, since that is the
// signal that the player ordering is not yet trustworthy.
func computeShapley(g *schema.Game, cfg *contract.Config, warnings *[]diag.Warning) map[int]float64 {
	if cfg.Indices.Shapley.Exact {
		return cardinal.ShapleyExact(g)
	}
	seed := combi.SeedFor(g.ScenarioID, g.GameID, cfg.Indices.Shapley.MonteCarloSamples, cfg.Seed)
	sampler := combi.NewPermutationSampler(seed)
	values, stderr := cardinal.ShapleyMonteCarloDiagnostics(g, cfg.Indices.Shapley.MonteCarloSamples, sampler)

	maxStderr, spread := maxStderrAndSpread(values, stderr)
	if spread > 0 && maxStderr/spread > shapleyConvergenceThreshold {
		*warnings = append(*warnings, diag.Warning{
			ScenarioID: g.ScenarioID,
			GameID:     g.GameID,
			Message: fmt.Sprintf(
				"monte-carlo shapley estimate may not have converged: max standard error %.4g is %.0f%% of the value spread across players",
				maxStderr, 100*maxStderr/spread),
		})
	}
	return values
}

// shapleyConvergenceThreshold is the fraction of the across-player value
// spread above which a Monte-Carlo standard error is considered large
// enough to undermine the resulting ranking.
const shapleyConvergenceThreshold = 0.25

func maxStderrAndSpread(values, stderr map[int]float64) (maxStderr, spread float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		if stderr[i] > maxStderr {
			maxStderr = stderr[i]
		}
	}
	return maxStderr, max - min
}

func computeBanzhaf(g *schema.Game, cfg *contract.Config, warnings *[]diag.Warning) (map[int]float64, map[int]int) {
	raw := cardinal.Banzhaf(g, false)
	values := raw
	if cfg.Indices.Banzhaf.Normalize {
		if cardinal.IsDegenerate(raw) {
			*warnings = append(*warnings, diag.Warning{
				ScenarioID: g.ScenarioID,
				GameID:     g.GameID,
				Message:    "banzhaf normalization degenerate (all raw values zero); reporting raw values",
			})
		} else {
			values = cardinal.Banzhaf(g, true)
		}
	}
	return values, combi.DenseRankFloat(values, true)
}

// resolveRuleNames returns configured if non-empty, else every known rule.
func resolveRuleNames(configured []string) []string {
	if len(configured) > 0 {
		return configured
	}
	return schema.AllRuleNames
}

func filterRules(rules []axioms.SynergyRule, configured []string) []axioms.SynergyRule {
	names := resolveRuleNames(configured)
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	out := make([]axioms.SynergyRule, 0, len(rules))
	for _, r := range rules {
		if allowed[r.Name()] {
			out = append(out, r)
		}
	}
	return out
}
