package ioformat

import (
	"fmt"

	"github.com/coopmetrics/coopmetrics/internal/contract"
	"github.com/coopmetrics/coopmetrics/schema"
)

// TableIO is the contract.TableReader/contract.TableWriter implementation
// backing the CLI: it dispatches to the CSV, Parquet, or xlsx path by
// format.
type TableIO struct{}

// ReadGameTable reads the input table in the format named by cfg.Format
// ("csv" or "parquet"; "csv" is assumed when unset).
func (TableIO) ReadGameTable(cfg *contract.InputConfig) ([]contract.GameTableRow, error) {
	switch schema.OutputFormat(cfg.Format) {
	case schema.ParquetOut:
		return readParquetGameTable(cfg)
	case "", schema.CSVOut:
		return readCSVGameTable(cfg)
	default:
		return nil, fmt.Errorf("unsupported input format %q: %w", cfg.Format, schema.ErrInconsistentConfig)
	}
}

// WriteIndividuals writes the per-player result table in the given format.
func (TableIO) WriteIndividuals(rows []schema.IndividualRow, path string, format schema.OutputFormat) error {
	switch format {
	case schema.ParquetOut:
		return writeIndividualsParquet(rows, path)
	case schema.XLSXOut:
		return writeIndividualsXLSX(rows, path)
	case schema.CSVOut, schema.TableOut:
		return writeIndividualsCSV(rows, path)
	default:
		return fmt.Errorf("unsupported output format %q: %w", format, schema.ErrInconsistentConfig)
	}
}

// WriteCoalitions writes the per-coalition result table in the given format.
func (TableIO) WriteCoalitions(rows []schema.CoalitionRow, path string, format schema.OutputFormat) error {
	switch format {
	case schema.ParquetOut:
		return writeCoalitionsParquet(rows, path)
	case schema.XLSXOut:
		return writeCoalitionsXLSX(rows, path)
	case schema.CSVOut, schema.TableOut:
		return writeCoalitionsCSV(rows, path)
	default:
		return fmt.Errorf("unsupported output format %q: %w", format, schema.ErrInconsistentConfig)
	}
}

// WriteAxioms writes an axiom summary table, always as CSV (diagnostic
// counters don't warrant a binary format).
func (TableIO) WriteAxioms(rows []schema.AxiomRow, path string) error {
	return writeAxiomsCSV(rows, path)
}

var _ contract.TableReader = TableIO{}
var _ contract.TableWriter = TableIO{}
