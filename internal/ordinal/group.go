package ordinal

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// DefaultGroupTargets returns every coalition T formed from players with
// |T| >= 2, the default target family for the group-level ordinal indices.
// Mirrors cardinal.DefaultInteractionSubsets: sizes 2..n are enumerated
// directly by index combination instead of filtering the full power set.
func DefaultGroupTargets(players []int) []schema.Coalition {
	n := len(players)
	if n < 2 {
		return []schema.Coalition{}
	}
	out := make([]schema.Coalition, 0, combin.Binomial(n, 2))
	for k := 2; k <= n; k++ {
		for _, combo := range combin.Combinations(n, k) {
			members := make([]int, k)
			for i, idx := range combo {
				members[i] = players[idx]
			}
			out = append(out, schema.CoalitionOf(members...))
		}
	}
	return out
}

// GroupMarginal computes the group ordinal marginal m_T^S: +1 if S u T is
// strictly preferred to S, -1 if S is strictly preferred to S u T, 0 if
// indifferent or either coalition's rank is undefined.
func GroupMarginal(q *Quotient, t, s schema.Coalition) int {
	withT := s.Union(t)
	cmp, ok := q.Compare(withT, s)
	if !ok {
		return 0
	}
	return cmp
}

// GroupBanzhafScores computes the group ordinal Banzhaf score s_T for every
// coalition T in targets.
func GroupBanzhafScores(g *schema.Game, q *Quotient, targets []schema.Coalition) map[schema.Coalition]int {
	scores := make(map[schema.Coalition]int, len(targets))
	universe := schema.CoalitionOf(g.Players...)
	for _, t := range targets {
		total := 0
		rest := combi.Rest(universe, t)
		for _, s := range combi.Subsets(rest) {
			total += GroupMarginal(q, t, s)
		}
		scores[t] = total
	}
	return scores
}

// GroupTheta returns Theta(T) = (T_1,...,T_l): for each layer k, the number
// of coalitions in Sigma_k that contain T as a subset.
func GroupTheta(q *Quotient, t schema.Coalition) []int {
	theta := make([]int, len(q.Layers))
	for k, layer := range q.Layers {
		count := 0
		for _, c := range layer {
			if c&t == t {
				count++
			}
		}
		theta[k] = count
	}
	return theta
}

// GroupLexCel computes Theta and the dense lex-cel rank (1 = best) for
// every coalition in targets.
func GroupLexCel(q *Quotient, targets []schema.Coalition) (thetas map[schema.Coalition][]int, ranks map[schema.Coalition]int) {
	thetas = make(map[schema.Coalition][]int, len(targets))
	for _, t := range targets {
		thetas[t] = GroupTheta(q, t)
	}
	ranks = combi.DenseRankBy(targets, func(a, b schema.Coalition) int {
		return LexCompare(thetas[a], thetas[b])
	})
	return thetas, ranks
}
