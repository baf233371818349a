package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

func readCSVGameTable(cfg *contract.InputConfig) ([]contract.GameTableRow, error) {
	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Path, schema.ErrInputSchema)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", cfg.Path, schema.ErrInputSchema)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	scenarioIdx, ok1 := col[cfg.ScenarioColumn]
	gameIdx, ok2 := col[cfg.GameColumn]
	coalitionIdx, ok3 := col[cfg.CoalitionColumn]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("missing required column in %s (need %s, %s, %s): %w",
			cfg.Path, cfg.ScenarioColumn, cfg.GameColumn, cfg.CoalitionColumn, schema.ErrInputSchema)
	}
	valueIdx, hasValue := col[cfg.ValueColumn]
	rankIdx, hasRank := col[cfg.RankColumn]

	var rows []contract.GameTableRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", cfg.Path, schema.ErrInputSchema)
		}

		coalition, err := DecodeCoalition(record[coalitionIdx], cfg.CoalitionFormat)
		if err != nil {
			return nil, err
		}

		row := contract.GameTableRow{
			ScenarioID: record[scenarioIdx],
			GameID:     record[gameIdx],
			Coalition:  coalition,
		}

		if hasValue && record[valueIdx] != "" {
			v, err := strconv.ParseFloat(record[valueIdx], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", record[valueIdx], schema.ErrInputSchema)
			}
			if !math.IsNaN(v) {
				row.Value = &v
			}
		}
		if hasRank && record[rankIdx] != "" {
			rk, err := strconv.Atoi(record[rankIdx])
			if err != nil {
				return nil, fmt.Errorf("invalid rank %q: %w", record[rankIdx], schema.ErrInputSchema)
			}
			row.Rank = &rk
		}

		rows = append(rows, row)
	}
	return rows, nil
}

func writeIndividualsCSV(rows []schema.IndividualRow, path string) error {
	return writeCSV(path, []string{
		"scenario_id", "game_id", "player", "shapley", "shapley_rank",
		"banzhaf", "banzhaf_rank", "ordinal_banzhaf_score", "ordinal_banzhaf_rank",
		"lex_cel_theta", "lex_cel_rank",
	}, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.ScenarioID, r.GameID, strconv.Itoa(r.Player),
			floatCell(r.Shapley), intCell(r.ShapleyRank),
			floatCell(r.Banzhaf), intCell(r.BanzhafRank),
			intCell(r.OrdinalBanzhafScore), intCell(r.OrdinalBanzhafRank),
			stringCell(r.LexCelTheta), intCell(r.LexCelRank),
		}
	})
}

func writeCoalitionsCSV(rows []schema.CoalitionRow, path string) error {
	return writeCSV(path, []string{
		"scenario_id", "game_id", "coalition", "size", "value", "synergy",
		"shapley_interaction", "banzhaf_interaction", "group_ordinal_banzhaf_score",
		"group_lexcel_theta", "group_lexcel_rank",
	}, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.ScenarioID, r.GameID, r.Coalition, strconv.Itoa(r.Size),
			floatCell(r.Value), floatCell(r.Synergy), floatCell(r.ShapleyInteraction), floatCell(r.BanzhafInteraction),
			floatCell(r.GroupOrdinalBanzhafScore), stringCell(r.GroupLexcelTheta), intCell(r.GroupLexcelRank),
		}
	})
}

func writeAxiomsCSV(rows []schema.AxiomRow, path string) error {
	return writeCSV(path, []string{"rule", "triggered_pairs", "satisfied_pairs", "satisfaction_rate"},
		len(rows), func(i int) []string {
			r := rows[i]
			rate := "nan"
			if r.SatisfactionRate != nil {
				rate = strconv.FormatFloat(*r.SatisfactionRate, 'g', -1, 64)
			}
			return []string{r.Rule, strconv.Itoa(r.TriggeredPairs), strconv.Itoa(r.SatisfiedPairs), rate}
		})
}

func writeCSV(path string, header []string, n int, rowAt func(i int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, schema.ErrInternal)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, schema.ErrInternal)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(rowAt(i)); err != nil {
			return fmt.Errorf("writing row %d to %s: %w", i, path, schema.ErrInternal)
		}
	}
	return w.Error()
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
