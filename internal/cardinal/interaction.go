package cardinal

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// DefaultInteractionSubsets returns every coalition S with 2 <= |S| <= n,
// the assembler-level default target family for the interaction indices.
// Subsets of each size are enumerated by index combination rather than by
// filtering the full power set, since the target family only ever needs
// sizes 2..n, never the singletons or the empty set.
func DefaultInteractionSubsets(players []int) []schema.Coalition {
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

// ShapleyInteraction computes the Shapley interaction index I_v(S) for every
// coalition S in subsets.
func ShapleyInteraction(g *schema.Game, subsets []schema.Coalition) map[schema.Coalition]float64 {
	result := make(map[schema.Coalition]float64, len(subsets))
	n := g.N()
	if n == 0 {
		return result
	}

	factorials := combi.NewFactorialTable(n)
	universe := schema.CoalitionOf(g.Players...)

	for _, s := range subsets {
		sz := s.Size()
		if sz == 0 {
			result[s] = 0.0
			continue
		}

		rest := combi.Rest(universe, s)
		outer := 0.0
		for _, t := range combi.Subsets(rest) {
			tSize := t.Size()
			inner := innerAltSum(g, s, t)
			coeff := factorials.Fact(n-tSize-sz) * factorials.Fact(tSize) / factorials.Fact(n-sz+1)
			outer += coeff * inner
		}
		result[s] = outer
	}
	return result
}

// BanzhafInteraction computes the Banzhaf interaction index I^B_v(S) for
// every coalition S in subsets.
func BanzhafInteraction(g *schema.Game, subsets []schema.Coalition) map[schema.Coalition]float64 {
	result := make(map[schema.Coalition]float64, len(subsets))
	n := g.N()
	if n == 0 {
		return result
	}

	universe := schema.CoalitionOf(g.Players...)

	for _, s := range subsets {
		sz := s.Size()
		if sz == 0 {
			result[s] = 0.0
			continue
		}

		rest := combi.Rest(universe, s)
		total := 0.0
		for _, t := range combi.Subsets(rest) {
			total += innerAltSum(g, s, t)
		}
		result[s] = total / pow2(n-sz)
	}
	return result
}

// innerAltSum computes sum_{L subset of S} (-1)^(|S|-|L|) v(L u T).
func innerAltSum(g *schema.Game, s, t schema.Coalition) float64 {
	sz := s.Size()
	sum := 0.0
	for _, l := range combi.Subsets(s) {
		sign := 1.0
		if (sz-l.Size())%2 != 0 {
			sign = -1.0
		}
		sum += sign * g.Value(l.Union(t))
	}
	return sum
}

func pow2(k int) float64 {
	v := 1.0
	for i := 0; i < k; i++ {
		v *= 2.0
	}
	return v
}
