// Package cmd defines the command-line interface for coopmetrics.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coopmetrics/coopmetrics/internal/contract"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg holds the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper unmarshals into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "coopmetrics",
	Short:              "Post-process coalition game tables into contribution indices.",
	Long:               `coopmetrics turns a table of coalition worths or ranks into Shapley, Banzhaf, synergy, and ordinal contribution indices, plus axiom satisfaction summaries.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads the config file and environment variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".coopmetrics")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("COOPMETRICS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("input.format", "csv")
	viper.SetDefault("input.coalition_column", contract.DefaultCoalitionColumn)
	viper.SetDefault("input.scenario_column", contract.DefaultScenarioColumn)
	viper.SetDefault("input.game_column", contract.DefaultGameColumn)
	viper.SetDefault("input.value_column", contract.DefaultValueColumn)
	viper.SetDefault("input.rank_column", contract.DefaultRankColumn)
	viper.SetDefault("ranking.mode", contract.DefaultRankingMode)
	viper.SetDefault("indices.shapley.monte_carlo_samples", contract.DefaultMonteCarloSamples)
	viper.SetDefault("output.format", contract.DefaultOutputFormat)
	viper.SetDefault("workers", contract.DefaultWorkers)
}

// sharedSetup unmarshals config and runs validation, populating cfg from
// input.
func sharedSetup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := viper.Unmarshal(input); err != nil {
		return err
	}

	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
