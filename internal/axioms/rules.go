// Package axioms implements the Swimmy and Synergy–Anasy Distinction (SADA)
// meta-evaluators, which measure how well a synergy-comparison rule
// satisfies an ordinal consistency axiom against a game's quotient ranking.
package axioms

import "github.com/coopmetrics/coopmetrics/schema"

// SynergyRule scores coalitions under some synergy-comparison rule and
// reports whether it strictly prefers one coalition's synergy over another's.
type SynergyRule interface {
	Name() string
	ScoreOf(c schema.Coalition) (float64, bool)
	Prefers(a, b schema.Coalition) bool
}

type valueRule struct {
	name   string
	values map[schema.Coalition]float64
}

func (r *valueRule) Name() string { return r.name }

func (r *valueRule) ScoreOf(c schema.Coalition) (float64, bool) {
	v, ok := r.values[c]
	return v, ok
}

func (r *valueRule) Prefers(a, b schema.Coalition) bool {
	va, oka := r.values[a]
	vb, okb := r.values[b]
	return oka && okb && va > vb
}

// NewShapleyInteractionRule builds the shapley_interaction synergy rule from
// a game's precomputed Shapley interaction-index values.
func NewShapleyInteractionRule(values map[schema.Coalition]float64) SynergyRule {
	return &valueRule{name: schema.RuleShapleyInteraction, values: values}
}

// NewBanzhafInteractionRule builds the banzhaf_interaction synergy rule.
func NewBanzhafInteractionRule(values map[schema.Coalition]float64) SynergyRule {
	return &valueRule{name: schema.RuleBanzhafInteraction, values: values}
}

type intRule struct {
	name   string
	scores map[schema.Coalition]int
}

func (r *intRule) Name() string { return r.name }

func (r *intRule) ScoreOf(c schema.Coalition) (float64, bool) {
	v, ok := r.scores[c]
	return float64(v), ok
}

func (r *intRule) Prefers(a, b schema.Coalition) bool {
	va, oka := r.scores[a]
	vb, okb := r.scores[b]
	return oka && okb && va > vb
}

// NewGroupOrdinalBanzhafRule builds the group_ordinal_banzhaf_score synergy
// rule from a game's precomputed group ordinal Banzhaf scores.
func NewGroupOrdinalBanzhafRule(scores map[schema.Coalition]int) SynergyRule {
	return &intRule{name: schema.RuleGroupOrdinalBanzhaf, scores: scores}
}

type rankRule struct {
	name  string
	ranks map[schema.Coalition]int
}

func (r *rankRule) Name() string { return r.name }

func (r *rankRule) ScoreOf(c schema.Coalition) (float64, bool) {
	v, ok := r.ranks[c]
	return float64(v), ok
}

// Prefers is reversed relative to valueRule/intRule: a smaller rank is the
// more preferred outcome.
func (r *rankRule) Prefers(a, b schema.Coalition) bool {
	ra, oka := r.ranks[a]
	rb, okb := r.ranks[b]
	return oka && okb && ra < rb
}

// NewGroupLexcelRankRule builds the group_lexcel_rank synergy rule from a
// game's precomputed group lex-cel ranks.
func NewGroupLexcelRankRule(ranks map[schema.Coalition]int) SynergyRule {
	return &rankRule{name: schema.RuleGroupLexcelRank, ranks: ranks}
}

func twoPlayerCoalitions(players []int) []schema.Coalition {
	out := make([]schema.Coalition, 0)
	for a := 0; a < len(players); a++ {
		for b := a + 1; b < len(players); b++ {
			out = append(out, schema.CoalitionOf(players[a], players[b]))
		}
	}
	return out
}
