package cardinal

import (
	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// Banzhaf computes the raw Banzhaf index for every player:
// beta_i = sum over S subset of N\{i} of (v(S u {i}) - v(S)).
// When normalize is true, every value is divided by sum_j |beta_j|; if that
// sum is zero the raw values are returned unchanged (NumericDegenerate,
// caller's responsibility to warn).
func Banzhaf(g *schema.Game, normalize bool) map[int]float64 {
	n := g.N()
	raw := make(map[int]float64, n)
	if n == 0 {
		return raw
	}

	universe := schema.CoalitionOf(g.Players...)
	for _, i := range g.Players {
		raw[i] = 0.0
	}

	for _, i := range g.Players {
		iBit := schema.CoalitionOf(i)
		others := combi.Rest(universe, iBit)
		for _, s := range combi.Subsets(others) {
			withI := s.Union(iBit)
			raw[i] += g.Value(withI) - g.Value(s)
		}
	}

	if !normalize {
		return raw
	}

	total := 0.0
	for _, v := range raw {
		total += abs(v)
	}
	if total == 0 {
		return raw
	}

	normalized := make(map[int]float64, n)
	for i, v := range raw {
		normalized[i] = v / total
	}
	return normalized
}

// IsDegenerate reports whether normalizing the given raw Banzhaf map would
// divide by zero.
func IsDegenerate(raw map[int]float64) bool {
	total := 0.0
	for _, v := range raw {
		total += abs(v)
	}
	return total == 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
