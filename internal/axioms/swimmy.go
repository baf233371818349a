package axioms

import (
	"github.com/coopmetrics/coopmetrics/internal/ordinal"
	"github.com/coopmetrics/coopmetrics/schema"
)

// SwimmyResult accumulates triggered/satisfied pair counts per rule name
// across every game passed to EvaluateSwimmy.
type SwimmyResult struct {
	Triggered map[string]int
	Satisfied map[string]int
}

// NewSwimmyResult returns an empty accumulator.
func NewSwimmyResult() *SwimmyResult {
	return &SwimmyResult{Triggered: map[string]int{}, Satisfied: map[string]int{}}
}

// swimmyAntecedent reports whether the Swimmy antecedent holds for the
// ordered pair (s, t) of two-player coalitions: under at least one of the
// two labelings of t's members against s's members, both singleton
// comparisons weakly favor s's member and s is weakly dispreferred to t,
// with at least one of the three comparisons strict.
func swimmyAntecedent(q *ordinal.Quotient, s, t schema.Coalition) bool {
	sMembers := s.Players()
	tMembers := t.Players()
	if len(sMembers) != 2 || len(tMembers) != 2 {
		return false
	}

	stCmp, stOk := q.Compare(s, t)
	if !stOk || stCmp > 0 {
		return false
	}

	s1, s2 := schema.CoalitionOf(sMembers[0]), schema.CoalitionOf(sMembers[1])
	labelings := [2][2]schema.Coalition{
		{schema.CoalitionOf(tMembers[0]), schema.CoalitionOf(tMembers[1])},
		{schema.CoalitionOf(tMembers[1]), schema.CoalitionOf(tMembers[0])},
	}

	for _, lab := range labelings {
		t1, t2 := lab[0], lab[1]
		c1, ok1 := q.Compare(s1, t1)
		c2, ok2 := q.Compare(s2, t2)
		if !ok1 || !ok2 || c1 < 0 || c2 < 0 {
			continue
		}
		if c1 > 0 || c2 > 0 || stCmp < 0 {
			return true
		}
	}
	return false
}

// EvaluateSwimmy checks the Swimmy Axiom antecedent over every ordered pair
// of distinct two-player coalitions of g, tallying into acc for every rule
// in rules. Games with no ranks contribute nothing.
func EvaluateSwimmy(g *schema.Game, rules []SynergyRule, acc *SwimmyResult) {
	if !g.HasRanks() {
		return
	}
	q := ordinal.BuildQuotient(g)
	twoPlayer := twoPlayerCoalitions(g.Players)

	for _, s := range twoPlayer {
		for _, t := range twoPlayer {
			if s == t {
				continue
			}
			if !swimmyAntecedent(q, s, t) {
				continue
			}
			for _, rule := range rules {
				if _, ok := rule.ScoreOf(s); !ok {
					continue
				}
				if _, ok := rule.ScoreOf(t); !ok {
					continue
				}
				acc.Triggered[rule.Name()]++
				if rule.Prefers(t, s) {
					acc.Satisfied[rule.Name()]++
				}
			}
		}
	}
}
