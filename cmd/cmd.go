package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coopmetrics/coopmetrics/internal/diag"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Int("workers", 0, "Number of concurrent workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Override seed for Monte-Carlo Shapley sampling")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		diag.FatalError("error binding root flags", err)
	}

	computeCmd.Flags().String("input", "", "Path to the input game table")
	computeCmd.Flags().String("input-format", "", "Input format: csv or parquet")
	computeCmd.Flags().String("coalition-column", "", "Name of the coalition column")
	computeCmd.Flags().String("scenario-column", "", "Name of the scenario id column")
	computeCmd.Flags().String("game-column", "", "Name of the game id column")
	computeCmd.Flags().String("value-column", "", "Name of the value column")
	computeCmd.Flags().String("rank-column", "", "Name of the rank column")
	computeCmd.Flags().IntSlice("players", nil, "Explicit player ids (defaults to inferring from the coalitions seen)")
	computeCmd.Flags().String("game-type", "", "Game type: TU or ORDINAL")
	computeCmd.Flags().String("coalition-format", "", "Coalition cell format: auto, bitmask, or bitstring")

	computeCmd.Flags().String("ranking-mode", "", "Rank synthesis mode: dense, bin, or none")
	computeCmd.Flags().Float64("ranking-bin-width", 0, "Bin width for bin ranking mode")
	computeCmd.Flags().Bool("ranking-descending", false, "Treat a larger value as more preferred when synthesizing ranks")

	computeCmd.Flags().Bool("shapley-exact", false, "Compute the exact Shapley value instead of Monte-Carlo")
	computeCmd.Flags().Int("shapley-samples", 0, "Monte-Carlo sample count for the Shapley estimate")

	computeCmd.Flags().Bool("banzhaf", false, "Compute the raw Banzhaf index")
	computeCmd.Flags().Bool("banzhaf-normalize", false, "Normalize the Banzhaf index")

	computeCmd.Flags().Bool("synergy", false, "Compute the synergy index")
	computeCmd.Flags().Bool("ordinal", false, "Compute the ordinal Banzhaf score")
	computeCmd.Flags().Bool("lex-cel", false, "Compute lex-cel theta vectors and ranks")

	computeCmd.Flags().Bool("interactions", false, "Compute coalition-level interaction indices")
	computeCmd.Flags().Bool("interactions-shapley", false, "Compute the Shapley interaction index")
	computeCmd.Flags().Bool("interactions-banzhaf", false, "Compute the Banzhaf interaction index")
	computeCmd.Flags().Bool("interactions-group-ordinal-banzhaf", false, "Compute the group ordinal Banzhaf score")
	computeCmd.Flags().Bool("interactions-group-lex-cel", false, "Compute group lex-cel theta vectors and ranks")

	computeCmd.Flags().Bool("swimmy", false, "Evaluate the Swimmy axiom")
	computeCmd.Flags().StringSlice("swimmy-rules", nil, "Synergy rules to check under Swimmy (defaults to all)")
	computeCmd.Flags().Bool("sada", false, "Evaluate the SADA axiom")
	computeCmd.Flags().StringSlice("sada-rules", nil, "Synergy rules to check under SADA (defaults to all)")

	computeCmd.Flags().String("output-path", "", "Output directory (defaults to outputs/<input-dir>/<input-stem>/)")
	computeCmd.Flags().String("output-format", "", "Output format: csv, parquet, xlsx, or table")

	bindings := map[string]string{
		"input.path":             "input",
		"input.format":           "input-format",
		"input.coalition_column": "coalition-column",
		"input.scenario_column":  "scenario-column",
		"input.game_column":      "game-column",
		"input.value_column":     "value-column",
		"input.rank_column":      "rank-column",
		"input.players":          "players",
		"input.game_type":        "game-type",
		"input.coalition_format": "coalition-format",

		"ranking.mode":       "ranking-mode",
		"ranking.bin_width":  "ranking-bin-width",
		"ranking.descending": "ranking-descending",

		"indices.shapley.exact":               "shapley-exact",
		"indices.shapley.monte_carlo_samples": "shapley-samples",
		"indices.banzhaf.enabled":             "banzhaf",
		"indices.banzhaf.normalize":           "banzhaf-normalize",
		"indices.synergy.enabled":             "synergy",
		"indices.ordinal.enabled":             "ordinal",
		"indices.lex_cel.enabled":             "lex-cel",

		"indices.interactions.enabled":               "interactions",
		"indices.interactions.shapley":               "interactions-shapley",
		"indices.interactions.banzhaf":               "interactions-banzhaf",
		"indices.interactions.group_ordinal_banzhaf": "interactions-group-ordinal-banzhaf",
		"indices.interactions.group_lex_cel":         "interactions-group-lex-cel",

		"axioms.swimmy.enabled": "swimmy",
		"axioms.swimmy.rules":   "swimmy-rules",
		"axioms.sada.enabled":   "sada",
		"axioms.sada.rules":     "sada-rules",

		"output.path":   "output-path",
		"output.format": "output-format",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, computeCmd.Flags().Lookup(flag)); err != nil {
			diag.FatalError("error binding compute flag "+flag, err)
		}
	}
}
