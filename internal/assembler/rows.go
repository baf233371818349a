package assembler

import (
	"sort"

	"github.com/coopmetrics/coopmetrics/internal/ordinal"
	"github.com/coopmetrics/coopmetrics/schema"
)

func buildIndividualRows(
	g *schema.Game,
	shapley map[int]float64, shapleyRanks map[int]int,
	banzhaf map[int]float64, banzhafRanks map[int]int,
	ordinalScores map[int]int, ordinalRanks map[int]int,
	lexThetas map[int][]int, lexRanks map[int]int,
) []schema.IndividualRow {
	rows := make([]schema.IndividualRow, 0, g.N())
	for _, p := range g.SortedPlayers() {
		row := schema.IndividualRow{
			ScenarioID: g.ScenarioID,
			GameID:     g.GameID,
			Player:     p,
		}
		if shapley != nil {
			row.Shapley = floatPtr(shapley[p])
			row.ShapleyRank = rankPtr(shapleyRanks, p)
		}
		if banzhaf != nil {
			row.Banzhaf = floatPtr(banzhaf[p])
			row.BanzhafRank = rankPtr(banzhafRanks, p)
		}
		if ordinalScores != nil {
			row.OrdinalBanzhafScore = rankPtr(ordinalScores, p)
			row.OrdinalBanzhafRank = rankPtr(ordinalRanks, p)
		}
		if lexThetas != nil {
			s := ordinal.ThetaString(lexThetas[p])
			row.LexCelTheta = &s
			row.LexCelRank = rankPtr(lexRanks, p)
		}
		rows = append(rows, row)
	}
	return rows
}

func buildCoalitionRows(
	g *schema.Game,
	synergy map[schema.Coalition]float64,
	shapleyInt, banzhafInt map[schema.Coalition]float64,
	groupBanzhaf map[schema.Coalition]int,
	groupThetas map[schema.Coalition][]int, groupLexRanks map[schema.Coalition]int,
) []schema.CoalitionRow {
	present := make(map[schema.Coalition]bool)
	for _, c := range g.Coalitions {
		present[c] = true
	}
	for c := range shapleyInt {
		present[c] = true
	}
	for c := range banzhafInt {
		present[c] = true
	}
	for c := range groupBanzhaf {
		present[c] = true
	}
	for c := range groupThetas {
		present[c] = true
	}

	coalitions := make([]schema.Coalition, 0, len(present))
	for c := range present {
		coalitions = append(coalitions, c)
	}
	sort.Slice(coalitions, func(i, j int) bool { return coalitions[i] < coalitions[j] })

	rows := make([]schema.CoalitionRow, 0, len(coalitions))
	for _, c := range coalitions {
		row := schema.CoalitionRow{
			ScenarioID: g.ScenarioID,
			GameID:     g.GameID,
			Coalition:  c.String(),
			Size:       c.Size(),
		}
		if _, ok := g.Values[c]; ok {
			row.Value = floatPtr(g.Value(c))
		}
		if synergy != nil {
			if v, ok := synergy[c]; ok {
				row.Synergy = floatPtr(v)
			}
		}
		if shapleyInt != nil {
			if v, ok := shapleyInt[c]; ok {
				row.ShapleyInteraction = floatPtr(v)
			}
		}
		if banzhafInt != nil {
			if v, ok := banzhafInt[c]; ok {
				row.BanzhafInteraction = floatPtr(v)
			}
		}
		if groupBanzhaf != nil {
			if v, ok := groupBanzhaf[c]; ok {
				vf := float64(v)
				row.GroupOrdinalBanzhafScore = &vf
			}
		}
		if groupThetas != nil {
			if theta, ok := groupThetas[c]; ok {
				s := ordinal.ThetaString(theta)
				row.GroupLexcelTheta = &s
				row.GroupLexcelRank = rankPtr(groupLexRanks, c)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func sortIndividuals(rows []schema.IndividualRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ScenarioID != b.ScenarioID {
			return a.ScenarioID < b.ScenarioID
		}
		if a.GameID != b.GameID {
			return a.GameID < b.GameID
		}
		return a.Player < b.Player
	})
}

func sortCoalitions(rows []schema.CoalitionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Coalition < b.Coalition
	})
}

func floatPtr(v float64) *float64 {
	return &v
}

func rankPtr[K comparable](m map[K]int, key K) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}
