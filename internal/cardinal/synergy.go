package cardinal

import "github.com/coopmetrics/coopmetrics/schema"

// Synergy computes synergy(S) = v(S) - sum_{i in S} v({i}) for every
// coalition present in the game, with synergy(empty) = 0 by convention.
func Synergy(g *schema.Game) map[schema.Coalition]float64 {
	result := make(map[schema.Coalition]float64, len(g.Coalitions))
	for _, c := range g.Coalitions {
		if c == 0 {
			result[c] = 0.0
			continue
		}
		singlesSum := 0.0
		for _, p := range c.Players() {
			singlesSum += g.Value(schema.CoalitionOf(p))
		}
		result[c] = g.Value(c) - singlesSum
	}
	return result
}
