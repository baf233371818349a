// Package cardinal implements the textbook transferable-utility indices:
// Shapley (exact and Monte-Carlo), Banzhaf, the Shapley/Banzhaf interaction
// indices, and synergy.
package cardinal

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// ShapleyExact computes the exact Shapley value for every player in the
// game: phi_i = sum over S subset of N\{i} of w(|S|,n)*(v(S u {i}) - v(S)).
func ShapleyExact(g *schema.Game) map[int]float64 {
	n := g.N()
	result := make(map[int]float64, n)
	if n == 0 {
		return result
	}

	factorials := combi.NewFactorialTable(n)
	universe := schema.CoalitionOf(g.Players...)

	for _, i := range g.Players {
		result[i] = 0.0
	}

	for _, i := range g.Players {
		iBit := schema.CoalitionOf(i)
		others := combi.Rest(universe, iBit)
		for _, s := range combi.Subsets(others) {
			withI := s.Union(iBit)
			weight := factorials.ShapleyWeight(s.Size(), n)
			result[i] += weight * (g.Value(withI) - g.Value(s))
		}
	}
	return result
}

// ShapleyMonteCarlo estimates the Shapley value by sampling numSamples
// uniform random permutations of the players and accumulating each
// player's marginal contribution in permutation order.
func ShapleyMonteCarlo(g *schema.Game, numSamples int, sampler *combi.PermutationSampler) map[int]float64 {
	result := make(map[int]float64, g.N())
	for _, i := range g.Players {
		result[i] = 0.0
	}
	if g.N() == 0 || numSamples <= 0 {
		return result
	}

	for s := 0; s < numSamples; s++ {
		perm := sampler.Next(g.Players)
		var coalition schema.Coalition
		prevValue := 0.0
		for _, i := range perm {
			coalition = coalition.Union(schema.CoalitionOf(i))
			currentValue := g.Value(coalition)
			result[i] += currentValue - prevValue
			prevValue = currentValue
		}
	}

	for i := range result {
		result[i] /= float64(numSamples)
	}
	return result
}

// ShapleyMonteCarloDiagnostics estimates the Shapley value exactly like
// ShapleyMonteCarlo, but also returns each player's standard error across
// the sampled marginal contributions, so a caller can report a convergence
// diagnostic on the estimate instead of a bare point value.
func ShapleyMonteCarloDiagnostics(g *schema.Game, numSamples int, sampler *combi.PermutationSampler) (values, stderr map[int]float64) {
	n := g.N()
	values = make(map[int]float64, n)
	stderr = make(map[int]float64, n)
	for _, i := range g.Players {
		values[i] = 0.0
		stderr[i] = 0.0
	}
	if n == 0 || numSamples <= 0 {
		return values, stderr
	}

	samples := make(map[int][]float64, n)
	for _, i := range g.Players {
		samples[i] = make([]float64, 0, numSamples)
	}

	for s := 0; s < numSamples; s++ {
		perm := sampler.Next(g.Players)
		var coalition schema.Coalition
		prevValue := 0.0
		for _, i := range perm {
			coalition = coalition.Union(schema.CoalitionOf(i))
			currentValue := g.Value(coalition)
			samples[i] = append(samples[i], currentValue-prevValue)
			prevValue = currentValue
		}
	}

	for _, i := range g.Players {
		mean, err := stats.Mean(samples[i])
		if err != nil {
			continue
		}
		values[i] = mean
		if numSamples < 2 {
			continue
		}
		sd, err := stats.StandardDeviation(samples[i])
		if err != nil {
			continue
		}
		stderr[i] = sd / math.Sqrt(float64(numSamples))
	}
	return values, stderr
}
