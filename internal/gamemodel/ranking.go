package gamemodel

import (
	"fmt"
	"math"

	"github.com/coopmetrics/coopmetrics/internal/combi"
	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

// AddRankFromValue synthesizes a Rank for every row lacking one, dense-
// ranking the Value column within each (scenario_id, game_id) group. mode
// is "dense" or "bin"; bin mode first quantizes each value by bin_width
// (floor when ascending preference, ceil when descending) before
// dense-ranking the resulting bin identifiers. descending=true means a
// larger value is better (rank 1 = maximum value).
func AddRankFromValue(rows []contract.GameTableRow, mode string, binWidth float64, descending bool) error {
	if mode == string(schema.BinRanking) && binWidth <= 0 {
		return fmt.Errorf("ranking.bin_width must be positive for bin mode: %w", schema.ErrInconsistentConfig)
	}

	type groupKey struct {
		ScenarioID string
		GameID     string
	}
	byGroup := make(map[groupKey][]int)

	for i, row := range rows {
		if row.Rank != nil || row.Value == nil {
			continue
		}
		key := groupKey{row.ScenarioID, row.GameID}
		byGroup[key] = append(byGroup[key], i)
	}

	for _, indices := range byGroup {
		scores := make(map[int]float64, len(indices))
		for _, idx := range indices {
			v := *rows[idx].Value
			if mode == string(schema.BinRanking) {
				if descending {
					v = math.Ceil(v / binWidth)
				} else {
					v = math.Floor(v / binWidth)
				}
			}
			scores[idx] = v
		}
		ranks := combi.DenseRankFloat(scores, descending)
		for idx, r := range ranks {
			rank := r
			rows[idx].Rank = &rank
		}
	}
	return nil
}
