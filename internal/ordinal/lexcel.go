package ordinal

import (
	"strconv"
	"strings"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/schema"
)

// Theta returns theta(i) = (i_1,...,i_l): for each layer k, the number of
// coalitions in Sigma_k that contain player i.
func Theta(q *Quotient, i int) []int {
	theta := make([]int, len(q.Layers))
	for k, layer := range q.Layers {
		count := 0
		for _, c := range layer {
			if c.Contains(i) {
				count++
			}
		}
		theta[k] = count
	}
	return theta
}

// LexCompare compares two layer-count vectors lexicographically from the top
// layer down: +1 if a is lex-greater, -1 if b is, 0 if they are equal.
func LexCompare(a, b []int) int {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			if a[k] > b[k] {
				return 1
			}
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}

// ThetaString renders a theta vector in the wire form used by the result
// tables: comma-separated, no surrounding brackets.
func ThetaString(theta []int) string {
	parts := make([]string, len(theta))
	for i, v := range theta {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// LexCel computes theta and the dense lex-cel rank (1 = lex-greatest) for
// every player in g.
func LexCel(g *schema.Game, q *Quotient) (thetas map[int][]int, ranks map[int]int) {
	thetas = make(map[int][]int, g.N())
	for _, i := range g.Players {
		thetas[i] = Theta(q, i)
	}
	ranks = combi.DenseRankBy(g.Players, func(a, b int) int {
		return LexCompare(thetas[a], thetas[b])
	})
	return thetas, ranks
}
