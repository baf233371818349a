package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopmetrics/coopmetrics/schema"
)

func TestProcessAndValidateRequiresInputPath(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, &ConfigRawInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestProcessAndValidateAppliesDefaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{Input: InputConfig{Path: "data.csv"}}

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultCoalitionColumn, cfg.Input.CoalitionColumn)
	assert.Equal(t, DefaultScenarioColumn, cfg.Input.ScenarioColumn)
	assert.Equal(t, string(schema.TUGame), cfg.Input.GameType)
	assert.Equal(t, DefaultRankingMode, cfg.Ranking.Mode)
	assert.Equal(t, DefaultMonteCarloSamples, cfg.Indices.Shapley.MonteCarloSamples)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestProcessAndValidateRejectsUnknownRankingMode(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{Input: InputConfig{Path: "data.csv"}, Ranking: RankingConfig{Mode: "bogus"}}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestProcessAndValidateBinModeRequiresWidth(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Input:   InputConfig{Path: "data.csv"},
		Ranking: RankingConfig{Mode: string(schema.BinRanking), BinWidth: 0},
	}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestProcessAndValidateAxiomsRequireInteractions(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Input:  InputConfig{Path: "data.csv"},
		Axioms: AxiomsConfig{Swimmy: AxiomRuleConfig{Enabled: true}},
	}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestProcessAndValidateAxiomsRequireAResolvableSubFlag(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Input:   InputConfig{Path: "data.csv"},
		Indices: IndicesConfig{Interactions: InteractionsConfig{Enabled: true}},
		Axioms:  AxiomsConfig{Swimmy: AxiomRuleConfig{Enabled: true}},
	}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}

func TestProcessAndValidateAxiomsSucceedWithInteractionsEnabled(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Input: InputConfig{Path: "data.csv"},
		Indices: IndicesConfig{Interactions: InteractionsConfig{
			Enabled: true,
			Shapley: true,
		}},
		Axioms: AxiomsConfig{Swimmy: AxiomRuleConfig{Enabled: true}},
	}
	require.NoError(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidateRejectsUnknownOutputFormat(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Input:  InputConfig{Path: "data.csv"},
		Output: OutputConfig{Format: "yaml"},
	}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInconsistentConfig)
}
