package combi

import "sort"

// DenseRankBy assigns dense ranks (1 = best, ties share a rank, the next
// distinct value gets the next consecutive integer) over keys, using cmp(a,b)
// to mean: positive if a ranks strictly better than b, negative if worse,
// zero if tied.
func DenseRankBy[K comparable](keys []K, cmp func(a, b K) int) map[K]int {
	order := make([]K, len(keys))
	copy(order, keys)
	sort.SliceStable(order, func(i, j int) bool {
		return cmp(order[i], order[j]) > 0
	})

	ranks := make(map[K]int, len(order))
	if len(order) == 0 {
		return ranks
	}
	rank := 1
	ranks[order[0]] = rank
	for k := 1; k < len(order); k++ {
		if cmp(order[k-1], order[k]) != 0 {
			rank++
		}
		ranks[order[k]] = rank
	}
	return ranks
}

// DenseRankFloat dense-ranks a map of float scores. descending=true means a
// larger score is better (rank 1).
func DenseRankFloat[K comparable](scores map[K]float64, descending bool) map[K]int {
	keys := make([]K, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	return DenseRankBy(keys, func(a, b K) int {
		diff := scores[a] - scores[b]
		if !descending {
			diff = -diff
		}
		switch {
		case diff > 0:
			return 1
		case diff < 0:
			return -1
		default:
			return 0
		}
	})
}

// DenseRankInt is the integer-score analogue of DenseRankFloat.
func DenseRankInt[K comparable](scores map[K]int, descending bool) map[K]int {
	keys := make([]K, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	return DenseRankBy(keys, func(a, b K) int {
		diff := scores[a] - scores[b]
		if !descending {
			diff = -diff
		}
		return diff
	})
}
