// Package gamemodel builds schema.Game objects from a validated input table
// and synthesizes ranks from values when the table carries no rank column.
package gamemodel

import (
	"fmt"
	"sort"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

type gameKey struct {
	ScenarioID string
	GameID     string
}

type group struct {
	values    map[schema.Coalition]float64
	ranks     map[schema.Coalition]int
	seen      map[schema.Coalition]bool
	playerSet map[int]bool
}

// BuildGamesFromTable groups validated table rows by (scenario_id, game_id)
// into Game objects, inferring each game's player set from the union of its
// coalitions' members unless explicitPlayers overrides it. Rows are grouped
// regardless of input order; the returned games are sorted by
// (scenario_id, game_id) for deterministic downstream processing.
func BuildGamesFromTable(rows []contract.GameTableRow, explicitPlayers []int, gameType schema.GameType) ([]*schema.Game, error) {
	groups := make(map[gameKey]*group)
	var order []gameKey

	for _, row := range rows {
		key := gameKey{row.ScenarioID, row.GameID}
		grp, ok := groups[key]
		if !ok {
			grp = &group{
				values:    make(map[schema.Coalition]float64),
				ranks:     make(map[schema.Coalition]int),
				seen:      make(map[schema.Coalition]bool),
				playerSet: make(map[int]bool),
			}
			groups[key] = grp
			order = append(order, key)
		}

		if grp.seen[row.Coalition] {
			return nil, fmt.Errorf("duplicate coalition %s for game (%s, %s): %w",
				row.Coalition, row.ScenarioID, row.GameID, schema.ErrInputSchema)
		}
		grp.seen[row.Coalition] = true

		if row.Value != nil {
			grp.values[row.Coalition] = *row.Value
		}
		if row.Rank != nil {
			grp.ranks[row.Coalition] = *row.Rank
		}
		for _, p := range row.Coalition.Players() {
			grp.playerSet[p] = true
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].ScenarioID != order[j].ScenarioID {
			return order[i].ScenarioID < order[j].ScenarioID
		}
		return order[i].GameID < order[j].GameID
	})

	games := make([]*schema.Game, 0, len(order))
	for _, key := range order {
		grp := groups[key]

		players := explicitPlayers
		if len(players) == 0 {
			players = make([]int, 0, len(grp.playerSet))
			for p := range grp.playerSet {
				players = append(players, p)
			}
			sort.Ints(players)
		}

		coalitions := make([]schema.Coalition, 0, len(grp.seen))
		for c := range grp.seen {
			coalitions = append(coalitions, c)
		}
		sort.Slice(coalitions, func(i, j int) bool { return coalitions[i] < coalitions[j] })

		var ranks map[schema.Coalition]int
		if len(grp.ranks) > 0 {
			ranks = grp.ranks
		}

		games = append(games, &schema.Game{
			ScenarioID: key.ScenarioID,
			GameID:     key.GameID,
			Players:    players,
			Coalitions: coalitions,
			Values:     grp.values,
			Ranks:      ranks,
			GameType:   gameType,
		})
	}
	return games, nil
}
