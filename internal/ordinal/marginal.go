package ordinal

import (
	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// Marginal computes the signed ordinal marginal contribution m_i^S of
// player i on reference set S: +1 if S u {i} is strictly preferred to S,
// -1 if S is strictly preferred to S u {i}, 0 if indifferent, if i is
// already in S, or if either coalition's rank is undefined.
func Marginal(q *Quotient, i int, s schema.Coalition) int {
	if s.Contains(i) {
		return 0
	}
	withI := s.Union(schema.CoalitionOf(i))
	cmp, ok := q.Compare(withI, s)
	if !ok {
		return 0
	}
	return cmp
}

// BanzhafScores computes the ordinal Banzhaf score u_i+ - u_i- for every
// player in g, plus the dense rank over players (1 = largest score).
func BanzhafScores(g *schema.Game, q *Quotient) (scores map[int]int, ranks map[int]int) {
	scores = make(map[int]int, g.N())
	universe := schema.CoalitionOf(g.Players...)
	for _, i := range g.Players {
		total := 0
		others := combi.Rest(universe, schema.CoalitionOf(i))
		for _, s := range combi.Subsets(others) {
			total += Marginal(q, i, s)
		}
		scores[i] = total
	}
	ranks = combi.DenseRankInt(scores, true)
	return scores, ranks
}
