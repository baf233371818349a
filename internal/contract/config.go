package contract

import (
	"fmt"
	"strings"

	"github.com/coopmetrics/coopmetrics/schema"
)

// Default values applied by initConfig via viper.SetDefault before parsing.
const (
	DefaultWorkers           = 0 // 0 means "use GOMAXPROCS"
	DefaultMonteCarloSamples = 1000
	DefaultRankingMode       = string(schema.DenseRanking)
	DefaultOutputFormat      = string(schema.CSVOut)
	DefaultCoalitionColumn   = "coalition"
	DefaultScenarioColumn    = "scenario_id"
	DefaultGameColumn        = "game_id"
	DefaultValueColumn       = "value"
	DefaultRankColumn        = "rank"
)

// InputConfig describes where the game table lives and how to read it.
type InputConfig struct {
	Path            string   `mapstructure:"path"`
	Format          string   `mapstructure:"format"`
	CoalitionColumn string   `mapstructure:"coalition_column"`
	ScenarioColumn  string   `mapstructure:"scenario_column"`
	GameColumn      string   `mapstructure:"game_column"`
	ValueColumn     string   `mapstructure:"value_column"`
	RankColumn      string   `mapstructure:"rank_column"`
	Players         []int    `mapstructure:"players"`
	GameType        string   `mapstructure:"game_type"`
	CoalitionFormat string   `mapstructure:"coalition_format"`
}

// RankingConfig controls rank synthesis from value.
type RankingConfig struct {
	Mode       string  `mapstructure:"mode"`
	BinWidth   float64 `mapstructure:"bin_width"`
	Descending bool    `mapstructure:"descending"`
}

// ShapleyConfig selects between exact and Monte-Carlo Shapley.
type ShapleyConfig struct {
	Exact             bool `mapstructure:"exact"`
	MonteCarloSamples int  `mapstructure:"monte_carlo_samples"`
}

// BanzhafConfig controls the raw Banzhaf index.
type BanzhafConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	Normalize bool `mapstructure:"normalize"`
}

// ToggleConfig is a plain enabled/disabled switch, reused by synergy, ordinal
// Banzhaf, and lex-cel.
type ToggleConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// InteractionsConfig controls the coalition-level interaction indices.
type InteractionsConfig struct {
	Enabled             bool `mapstructure:"enabled"`
	Shapley             bool `mapstructure:"shapley"`
	Banzhaf             bool `mapstructure:"banzhaf"`
	GroupOrdinalBanzhaf bool `mapstructure:"group_ordinal_banzhaf"`
	GroupLexCel         bool `mapstructure:"group_lex_cel"`
}

// IndicesConfig groups every index family's configuration.
type IndicesConfig struct {
	Shapley      ShapleyConfig       `mapstructure:"shapley"`
	Banzhaf      BanzhafConfig       `mapstructure:"banzhaf"`
	Synergy      ToggleConfig        `mapstructure:"synergy"`
	Ordinal      ToggleConfig        `mapstructure:"ordinal"`
	LexCel       ToggleConfig        `mapstructure:"lex_cel"`
	Interactions InteractionsConfig  `mapstructure:"interactions"`
}

// AxiomRuleConfig enables one axiom meta-evaluator and optionally restricts
// which synergy-comparison rules it considers.
type AxiomRuleConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Rules   []string `mapstructure:"rules"`
}

// AxiomsConfig groups the Swimmy and SADA evaluator toggles.
type AxiomsConfig struct {
	Swimmy AxiomRuleConfig `mapstructure:"swimmy"`
	SADA   AxiomRuleConfig `mapstructure:"sada"`
}

// OutputConfig controls where and in what format results are written.
type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// ConfigRawInput is the shape viper unmarshals into from config file, env,
// and flags, before validation and normalization.
type ConfigRawInput struct {
	Input   InputConfig   `mapstructure:"input"`
	Ranking RankingConfig `mapstructure:"ranking"`
	Indices IndicesConfig `mapstructure:"indices"`
	Axioms  AxiomsConfig  `mapstructure:"axioms"`
	Output  OutputConfig  `mapstructure:"output"`
	Workers int           `mapstructure:"workers"`
	Seed    int64         `mapstructure:"seed"`
}

// Config is the validated, final configuration used by the rest of the
// program. It is built once by ProcessAndValidate and never mutated.
type Config struct {
	Input   InputConfig
	Ranking RankingConfig
	Indices IndicesConfig
	Axioms  AxiomsConfig
	Output  OutputConfig
	Workers int
	Seed    int64
}

// ProcessAndValidate normalizes a raw config into a validated Config,
// populating the supplied cfg in place. Failures are InconsistentConfig
// errors; the caller is expected to abort the whole batch on error.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Input.Path == "" {
		return fmt.Errorf("input.path is required: %w", schema.ErrInconsistentConfig)
	}

	cfg.Input = input.Input
	if cfg.Input.CoalitionColumn == "" {
		cfg.Input.CoalitionColumn = DefaultCoalitionColumn
	}
	if cfg.Input.ScenarioColumn == "" {
		cfg.Input.ScenarioColumn = DefaultScenarioColumn
	}
	if cfg.Input.GameColumn == "" {
		cfg.Input.GameColumn = DefaultGameColumn
	}
	if cfg.Input.ValueColumn == "" {
		cfg.Input.ValueColumn = DefaultValueColumn
	}
	if cfg.Input.RankColumn == "" {
		cfg.Input.RankColumn = DefaultRankColumn
	}
	if cfg.Input.GameType == "" {
		cfg.Input.GameType = string(schema.TUGame)
	}
	if cfg.Input.CoalitionFormat == "" {
		cfg.Input.CoalitionFormat = string(schema.AutoCoalitionFormat)
	}

	cfg.Ranking = input.Ranking
	mode := strings.ToLower(cfg.Ranking.Mode)
	if mode == "" {
		mode = DefaultRankingMode
	}
	if _, ok := schema.ValidRankingModes[schema.RankingMode(mode)]; !ok {
		return fmt.Errorf("unknown ranking mode %q: %w", cfg.Ranking.Mode, schema.ErrInconsistentConfig)
	}
	cfg.Ranking.Mode = mode
	if cfg.Ranking.Mode == string(schema.BinRanking) && cfg.Ranking.BinWidth <= 0 {
		return fmt.Errorf("ranking.bin_width must be positive for bin mode: %w", schema.ErrInconsistentConfig)
	}

	cfg.Indices = input.Indices
	if cfg.Indices.Shapley.MonteCarloSamples <= 0 {
		cfg.Indices.Shapley.MonteCarloSamples = DefaultMonteCarloSamples
	}

	cfg.Axioms = input.Axioms
	if cfg.Axioms.Swimmy.Enabled || cfg.Axioms.SADA.Enabled {
		if !cfg.Indices.Interactions.Enabled {
			return fmt.Errorf("axioms require indices.interactions.enabled=true to produce rules: %w", schema.ErrInconsistentConfig)
		}
		if !cfg.Indices.Interactions.Shapley && !cfg.Indices.Interactions.Banzhaf &&
			!cfg.Indices.Interactions.GroupOrdinalBanzhaf && !cfg.Indices.Interactions.GroupLexCel {
			return fmt.Errorf("axioms require at least one of indices.interactions.shapley/banzhaf/group_ordinal_banzhaf/group_lex_cel to produce rules: %w", schema.ErrInconsistentConfig)
		}
	}

	cfg.Output = input.Output
	fmtName := strings.ToLower(cfg.Output.Format)
	if fmtName == "" {
		fmtName = DefaultOutputFormat
	}
	if _, ok := schema.ValidOutputFormats[schema.OutputFormat(fmtName)]; !ok {
		return fmt.Errorf("unknown output format %q: %w", cfg.Output.Format, schema.ErrInconsistentConfig)
	}
	cfg.Output.Format = fmtName

	cfg.Workers = input.Workers
	cfg.Seed = input.Seed

	return nil
}
