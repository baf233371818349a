package axioms

import (
	"github.com/coopmetrics/coopmetrics/internal/ordinal"
	"github.com/coopmetrics/coopmetrics/schema"
)

// SADAResult accumulates triggered/satisfied pair counts per rule name
// across every game passed to EvaluateSADA.
type SADAResult struct {
	Triggered map[string]int
	Satisfied map[string]int
}

// NewSADAResult returns an empty accumulator.
func NewSADAResult() *SADAResult {
	return &SADAResult{Triggered: map[string]int{}, Satisfied: map[string]int{}}
}

// sadaLevel computes the synergy level in {1,...,6} for two-player
// coalition t, or ok=false if t is not a two-player coalition or any of
// its singleton/pair ranks is undefined.
func sadaLevel(q *ordinal.Quotient, t schema.Coalition) (level int, ok bool) {
	members := t.Players()
	if len(members) != 2 {
		return 0, false
	}
	i, j := members[0], members[1]
	a := schema.CoalitionOf(i)
	b := schema.CoalitionOf(j)
	if !q.Present(a) || !q.Present(b) || !q.Present(t) {
		return 0, false
	}

	succ := func(x, y schema.Coalition) bool {
		cmp, ok := q.Compare(x, y)
		return ok && cmp > 0
	}
	succeq := func(x, y schema.Coalition) bool {
		cmp, ok := q.Compare(x, y)
		return ok && cmp >= 0
	}
	sim := func(x, y schema.Coalition) bool {
		cmp, ok := q.Compare(x, y)
		return ok && cmp == 0
	}

	if sim(t, a) && sim(a, b) {
		return 3, true
	}

	orderings := [2][2]int{{i, j}, {j, i}}
	for _, ord := range orderings {
		c1 := schema.CoalitionOf(ord[0])
		c2 := schema.CoalitionOf(ord[1])

		switch {
		case succ(t, c1) && succeq(c1, c2):
			return 1, true
		case sim(t, c1) && succ(c1, c2):
			return 2, true
		case succ(c1, t) && succ(t, c2):
			return 4, true
		case succ(c1, t) && sim(t, c2):
			return 5, true
		case succeq(c1, c2) && succ(c2, t):
			return 6, true
		}
	}
	return 0, false
}

// EvaluateSADA classifies every two-player coalition of g into a synergy
// level and, for every ordered pair (T,U) of distinct classified coalitions
// with a strictly lower level than U, tallies each rule's triggered/
// satisfied counts into acc. Games with no ranks contribute nothing.
func EvaluateSADA(g *schema.Game, rules []SynergyRule, acc *SADAResult) {
	if !g.HasRanks() {
		return
	}
	q := ordinal.BuildQuotient(g)
	twoPlayer := twoPlayerCoalitions(g.Players)

	levels := make(map[schema.Coalition]int, len(twoPlayer))
	for _, t := range twoPlayer {
		if lvl, ok := sadaLevel(q, t); ok {
			levels[t] = lvl
		}
	}

	for _, t := range twoPlayer {
		lt, ok := levels[t]
		if !ok {
			continue
		}
		for _, u := range twoPlayer {
			if u == t {
				continue
			}
			lu, ok := levels[u]
			if !ok || lt >= lu {
				continue
			}
			for _, rule := range rules {
				if _, ok := rule.ScoreOf(t); !ok {
					continue
				}
				if _, ok := rule.ScoreOf(u); !ok {
					continue
				}
				acc.Triggered[rule.Name()]++
				if rule.Prefers(t, u) {
					acc.Satisfied[rule.Name()]++
				}
			}
		}
	}
}
