// Package combi provides the combinatorial kernel shared by every index:
// power-set enumeration, factorial weights, and the deterministic
// permutation sampler.
package combi

import (
	"sort"

	"github.com/coopmetrics/coopmetrics/schema"
)

// PowerSet enumerates every coalition over the given players, in
// lexicographic order on the sorted player tuple: (), (0), (0,1), (0,1,2),
// (0,2), (1), ... This differs from ascending bitmask order, which would
// put {1} before {0,1}.
func PowerSet(players []int) []schema.Coalition {
	n := len(players)
	out := make([]schema.Coalition, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var c schema.Coalition
		for i, p := range players {
			if mask&(1<<uint(i)) != 0 {
				c |= schema.Coalition(1) << uint(p)
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool {
		pa, pb := out[a].Players(), out[b].Players()
		for k := 0; k < len(pa) && k < len(pb); k++ {
			if pa[k] != pb[k] {
				return pa[k] < pb[k]
			}
		}
		return len(pa) < len(pb)
	})
	return out
}

// Subsets enumerates every coalition that is a subset of universe (a
// bitmask), in ascending bitmask order.
func Subsets(universe schema.Coalition) []schema.Coalition {
	out := make([]schema.Coalition, 0, 1<<uint(universe.Size()))
	members := universe.Players()
	n := len(members)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var c schema.Coalition
		for i, p := range members {
			if mask&(1<<uint(i)) != 0 {
				c |= schema.Coalition(1) << uint(p)
			}
		}
		out = append(out, c)
	}
	return out
}

// Rest returns the coalition of players in universe that are not in S.
func Rest(universe, s schema.Coalition) schema.Coalition {
	return universe &^ s
}
