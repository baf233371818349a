package ioformat

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/coopmetrics/coopmetrics/schema"
)

func writeIndividualsXLSX(rows []schema.IndividualRow, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "individuals"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := []string{
		"scenario_id", "game_id", "player", "shapley", "shapley_rank",
		"banzhaf", "banzhaf_rank", "ordinal_banzhaf_score", "ordinal_banzhaf_rank",
		"lex_cel_theta", "lex_cel_rank",
	}
	if err := writeXLSXRow(f, sheet, 1, toCells(header)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []any{
			r.ScenarioID, r.GameID, r.Player,
			floatCellOrNil(r.Shapley), intCellOrNil(r.ShapleyRank),
			floatCellOrNil(r.Banzhaf), intCellOrNil(r.BanzhafRank),
			intCellOrNil(r.OrdinalBanzhafScore), intCellOrNil(r.OrdinalBanzhafRank),
			stringCellOrNil(r.LexCelTheta), intCellOrNil(r.LexCelRank),
		}
		if err := writeXLSXRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return saveXLSX(f, path)
}

func writeCoalitionsXLSX(rows []schema.CoalitionRow, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "coalitions"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := []string{
		"scenario_id", "game_id", "coalition", "size", "value", "synergy",
		"shapley_interaction", "banzhaf_interaction", "group_ordinal_banzhaf_score",
		"group_lexcel_theta", "group_lexcel_rank",
	}
	if err := writeXLSXRow(f, sheet, 1, toCells(header)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []any{
			r.ScenarioID, r.GameID, r.Coalition, r.Size,
			floatCellOrNil(r.Value), floatCellOrNil(r.Synergy), floatCellOrNil(r.ShapleyInteraction), floatCellOrNil(r.BanzhafInteraction),
			floatCellOrNil(r.GroupOrdinalBanzhafScore), stringCellOrNil(r.GroupLexcelTheta), intCellOrNil(r.GroupLexcelRank),
		}
		if err := writeXLSXRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return saveXLSX(f, path)
}

func writeXLSXRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		axis, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("computing cell address: %w", schema.ErrInternal)
		}
		if err := f.SetCellValue(sheet, axis, v); err != nil {
			return fmt.Errorf("setting %s on sheet %s: %w", axis, sheet, schema.ErrInternal)
		}
	}
	return nil
}

func saveXLSX(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, schema.ErrInternal)
	}
	return nil
}

func toCells(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}

func floatCellOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intCellOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func stringCellOrNil(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
