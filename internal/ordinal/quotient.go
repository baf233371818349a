// Package ordinal builds the coalitional quotient ranking from a game's rank
// map and implements every index defined over it: the signed ordinal
// marginal, ordinal Banzhaf, lex-cel, and their coalition-level (group)
// analogues.
package ordinal

import (
	"sort"

	"github.com/coopmetrics/coopmetrics/schema"
)

// Quotient is the partition of a game's ranked coalitions into equivalence
// layers Sigma_1 > Sigma_2 > ... > Sigma_l, ordered from most to least
// preferred. It is built once per game and reused by every ordinal index.
type Quotient struct {
	Layers  [][]schema.Coalition
	layerOf map[schema.Coalition]int
}

// BuildQuotient groups g's ranked coalitions by rank value and orders the
// resulting layers from smallest (best) to largest rank.
func BuildQuotient(g *schema.Game) *Quotient {
	byRank := make(map[int][]schema.Coalition)
	for c, r := range g.Ranks {
		byRank[r] = append(byRank[r], c)
	}

	distinctRanks := make([]int, 0, len(byRank))
	for r := range byRank {
		distinctRanks = append(distinctRanks, r)
	}
	sort.Ints(distinctRanks)

	q := &Quotient{
		Layers:  make([][]schema.Coalition, 0, len(distinctRanks)),
		layerOf: make(map[schema.Coalition]int, len(g.Ranks)),
	}
	for idx, r := range distinctRanks {
		layer := byRank[r]
		sort.Slice(layer, func(i, j int) bool { return layer[i] < layer[j] })
		q.Layers = append(q.Layers, layer)
		for _, c := range layer {
			q.layerOf[c] = idx
		}
	}
	return q
}

// Present reports whether c has a defined rank.
func (q *Quotient) Present(c schema.Coalition) bool {
	_, ok := q.layerOf[c]
	return ok
}

// Compare returns +1 if s is strictly preferred to t, -1 if t is strictly
// preferred to s, 0 if they are indifferent, and ok=false if either
// coalition has no defined rank.
func (q *Quotient) Compare(s, t schema.Coalition) (cmp int, ok bool) {
	ls, ok1 := q.layerOf[s]
	lt, ok2 := q.layerOf[t]
	if !ok1 || !ok2 {
		return 0, false
	}
	switch {
	case ls < lt:
		return 1, true
	case ls > lt:
		return -1, true
	default:
		return 0, true
	}
}

// Strict reports whether s is strictly preferred to t.
func (q *Quotient) Strict(s, t schema.Coalition) bool {
	cmp, ok := q.Compare(s, t)
	return ok && cmp > 0
}

// Indiff reports whether s and t share a layer.
func (q *Quotient) Indiff(s, t schema.Coalition) bool {
	cmp, ok := q.Compare(s, t)
	return ok && cmp == 0
}
