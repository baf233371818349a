package ioformat

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

// gameTableParquetRow is the on-disk Parquet shape of one input row; the
// coalition is stored in its canonical string form so Parquet-format input
// round-trips through the same codec as CSV.
type gameTableParquetRow struct {
	ScenarioID string   `parquet:"scenario_id,snappy"`
	GameID     string   `parquet:"game_id,snappy"`
	Coalition  string   `parquet:"coalition,snappy"`
	Value      *float64 `parquet:"value,optional,snappy"`
	Rank       *int64   `parquet:"rank,optional,snappy"`
}

func readParquetGameTable(cfg *contract.InputConfig) ([]contract.GameTableRow, error) {
	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Path, schema.ErrInputSchema)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Stat(); err != nil {
		return nil, fmt.Errorf("stat %s: %w", cfg.Path, schema.ErrInputSchema)
	}

	reader := parquet.NewGenericReader[gameTableParquetRow](file)
	defer func() { _ = reader.Close() }()

	buf := make([]gameTableParquetRow, 1024)
	var rows []contract.GameTableRow
	for {
		n, err := reader.Read(buf)
		for i := 0; i < n; i++ {
			r := buf[i]
			coalition, decErr := DecodeCoalition(r.Coalition, string(schema.AutoCoalitionFormat))
			if decErr != nil {
				return nil, decErr
			}
			row := contract.GameTableRow{
				ScenarioID: r.ScenarioID,
				GameID:     r.GameID,
				Coalition:  coalition,
				Value:      r.Value,
			}
			if r.Rank != nil {
				rk := int(*r.Rank)
				row.Rank = &rk
			}
			rows = append(rows, row)
		}
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("reading %s: %w", cfg.Path, schema.ErrInputSchema)
			}
			break
		}
	}
	return rows, nil
}

type individualParquetRow struct {
	ScenarioID          string   `parquet:"scenario_id,snappy"`
	GameID              string   `parquet:"game_id,snappy"`
	Player              int64    `parquet:"player,snappy"`
	Shapley             *float64 `parquet:"shapley,optional,snappy"`
	ShapleyRank         *int64   `parquet:"shapley_rank,optional,snappy"`
	Banzhaf             *float64 `parquet:"banzhaf,optional,snappy"`
	BanzhafRank         *int64   `parquet:"banzhaf_rank,optional,snappy"`
	OrdinalBanzhafScore *int64   `parquet:"ordinal_banzhaf_score,optional,snappy"`
	OrdinalBanzhafRank  *int64   `parquet:"ordinal_banzhaf_rank,optional,snappy"`
	LexCelTheta         *string  `parquet:"lex_cel_theta,optional,snappy"`
	LexCelRank          *int64   `parquet:"lex_cel_rank,optional,snappy"`
}

func writeIndividualsParquet(rows []schema.IndividualRow, path string) error {
	data := make([]individualParquetRow, len(rows))
	for i, r := range rows {
		data[i] = individualParquetRow{
			ScenarioID:          r.ScenarioID,
			GameID:              r.GameID,
			Player:              int64(r.Player),
			Shapley:             r.Shapley,
			ShapleyRank:         toInt64Ptr(r.ShapleyRank),
			Banzhaf:             r.Banzhaf,
			BanzhafRank:         toInt64Ptr(r.BanzhafRank),
			OrdinalBanzhafScore: toInt64Ptr(r.OrdinalBanzhafScore),
			OrdinalBanzhafRank:  toInt64Ptr(r.OrdinalBanzhafRank),
			LexCelTheta:         r.LexCelTheta,
			LexCelRank:          toInt64Ptr(r.LexCelRank),
		}
	}
	return writeGenericParquet(data, path)
}

type coalitionParquetRow struct {
	ScenarioID               string   `parquet:"scenario_id,snappy"`
	GameID                   string   `parquet:"game_id,snappy"`
	Coalition                string   `parquet:"coalition,snappy"`
	Size                     int64    `parquet:"size,snappy"`
	Value                    *float64 `parquet:"value,optional,snappy"`
	Synergy                  *float64 `parquet:"synergy,optional,snappy"`
	ShapleyInteraction       *float64 `parquet:"shapley_interaction,optional,snappy"`
	BanzhafInteraction       *float64 `parquet:"banzhaf_interaction,optional,snappy"`
	GroupOrdinalBanzhafScore *float64 `parquet:"group_ordinal_banzhaf_score,optional,snappy"`
	GroupLexcelTheta         *string  `parquet:"group_lexcel_theta,optional,snappy"`
	GroupLexcelRank          *int64   `parquet:"group_lexcel_rank,optional,snappy"`
}

func writeCoalitionsParquet(rows []schema.CoalitionRow, path string) error {
	data := make([]coalitionParquetRow, len(rows))
	for i, r := range rows {
		data[i] = coalitionParquetRow{
			ScenarioID:               r.ScenarioID,
			GameID:                   r.GameID,
			Coalition:                r.Coalition,
			Size:                     int64(r.Size),
			Value:                    r.Value,
			Synergy:                  r.Synergy,
			ShapleyInteraction:       r.ShapleyInteraction,
			BanzhafInteraction:       r.BanzhafInteraction,
			GroupOrdinalBanzhafScore: r.GroupOrdinalBanzhafScore,
			GroupLexcelTheta:         r.GroupLexcelTheta,
			GroupLexcelRank:          toInt64Ptr(r.GroupLexcelRank),
		}
	}
	return writeGenericParquet(data, path)
}

func writeGenericParquet[T any](data []T, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, schema.ErrInternal)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing parquet rows to %s: %w", path, schema.ErrInternal)
	}
	return nil
}

func toInt64Ptr(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
