package axioms

import "github.com/coopmetrics/coopmetrics/schema"

// Rows renders a per-rule summary in the fixed order of ruleNames, one row
// per name whether or not it was ever triggered, with a nil SatisfactionRate
// (rendered downstream as NaN) whenever TriggeredPairs is zero.
func (r *SwimmyResult) Rows(ruleNames []string) []schema.AxiomRow {
	return tallyRows(ruleNames, r.Triggered, r.Satisfied)
}

// Rows is the SADA analogue of SwimmyResult.Rows.
func (r *SADAResult) Rows(ruleNames []string) []schema.AxiomRow {
	return tallyRows(ruleNames, r.Triggered, r.Satisfied)
}

func tallyRows(ruleNames []string, triggered, satisfied map[string]int) []schema.AxiomRow {
	rows := make([]schema.AxiomRow, 0, len(ruleNames))
	for _, name := range ruleNames {
		t := triggered[name]
		s := satisfied[name]
		row := schema.AxiomRow{Rule: name, TriggeredPairs: t, SatisfiedPairs: s}
		if t > 0 {
			rate := float64(s) / float64(t)
			row.SatisfactionRate = &rate
		}
		rows = append(rows, row)
	}
	return rows
}
