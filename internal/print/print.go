// Package print renders the result tables as aligned human-readable tables
// for terminal use, via github.com/olekukonko/tablewriter.
package print

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

// Individuals renders the per-player result table.
func Individuals(rows []schema.IndividualRow) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{
		"scenario", "game", "player", "shapley", "shapley_rank",
		"banzhaf", "banzhaf_rank", "ord_banzhaf", "ord_banzhaf_rank",
		"lex_cel_theta", "lex_cel_rank",
	})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.ScenarioID, r.GameID, strconv.Itoa(r.Player),
			floatCell(r.Shapley), intCell(r.ShapleyRank),
			floatCell(r.Banzhaf), intCell(r.BanzhafRank),
			intCell(r.OrdinalBanzhafScore), intCell(r.OrdinalBanzhafRank),
			stringCell(r.LexCelTheta), intCell(r.LexCelRank),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("rendering individuals table: %w", schema.ErrInternal)
	}
	return table.Render()
}

// Coalitions renders the per-coalition result table.
func Coalitions(rows []schema.CoalitionRow) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{
		"scenario", "game", "coalition", "size", "value", "synergy",
		"shapley_int", "banzhaf_int", "group_ord_banzhaf",
		"group_lexcel_theta", "group_lexcel_rank",
	})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.ScenarioID, r.GameID, r.Coalition, strconv.Itoa(r.Size),
			floatCell(r.Value), floatCell(r.Synergy), floatCell(r.ShapleyInteraction), floatCell(r.BanzhafInteraction),
			floatCell(r.GroupOrdinalBanzhafScore), stringCell(r.GroupLexcelTheta), intCell(r.GroupLexcelRank),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("rendering coalitions table: %w", schema.ErrInternal)
	}
	return table.Render()
}

// Axioms renders an axiom summary table, coloring the satisfaction rate
// column by severity band.
func Axioms(title string, rows []schema.AxiomRow) error {
	fmt.Println(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"rule", "triggered", "satisfied", "rate", "label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		rateStr := "NaN"
		if r.SatisfactionRate != nil {
			rateStr = strconv.FormatFloat(*r.SatisfactionRate, 'f', 3, 64)
		}
		data = append(data, []string{
			r.Rule, strconv.Itoa(r.TriggeredPairs), strconv.Itoa(r.SatisfiedPairs),
			rateStr, contract.GetColorLabel(r.SatisfactionRate),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("rendering axiom table: %w", schema.ErrInternal)
	}
	return table.Render()
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
