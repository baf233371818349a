package schema

// Custom string types for type safety, following the same typed-const
// convention used for output modes and scoring modes elsewhere in this family
// of tools.
type (
	// OutputFormat represents the format of a written result table.
	OutputFormat string

	// RankingMode represents how coalition ranks are synthesized from values.
	RankingMode string

	// CoalitionFormat represents how a coalition cell is decoded on read.
	CoalitionFormat string

	// ErrorCategory tags a diagnostic by the error taxonomy.
	ErrorCategory string
)

// All output formats supported for individuals/coalitions tables.
const (
	CSVOut     OutputFormat = "csv"
	ParquetOut OutputFormat = "parquet"
	XLSXOut    OutputFormat = "xlsx"
	TableOut   OutputFormat = "table" // human-readable, terminal only
)

// All ranking modes supported for rank synthesis.
const (
	DenseRanking RankingMode = "dense"
	BinRanking   RankingMode = "bin"
	NoRanking    RankingMode = "none"
)

// All coalition cell formats recognized on read.
const (
	AutoCoalitionFormat      CoalitionFormat = "auto"
	BitmaskCoalitionFormat   CoalitionFormat = "bitmask"
	BitstringCoalitionFormat CoalitionFormat = "bitstring"
)

// Error category tags.
const (
	CategoryInputSchema        ErrorCategory = "input_schema"
	CategoryGameSizeExceeded   ErrorCategory = "game_size_exceeded"
	CategoryInconsistentConfig ErrorCategory = "inconsistent_config"
	CategoryNumericDegenerate  ErrorCategory = "numeric_degenerate"
	CategoryInternal           ErrorCategory = "internal"
)

// MaxPlayers is the hard bound on a game's player count.
const MaxPlayers = 12

// Synergy-comparison rule names, shared by the axiom evaluators and the
// assembler's rule registry.
const (
	RuleShapleyInteraction  = "shapley_interaction"
	RuleBanzhafInteraction  = "banzhaf_interaction"
	RuleGroupOrdinalBanzhaf = "group_ordinal_banzhaf_score"
	RuleGroupLexcelRank     = "group_lexcel_rank"
)

// AllRuleNames lists every synergy-comparison rule the assembler may register.
var AllRuleNames = []string{
	RuleShapleyInteraction,
	RuleBanzhafInteraction,
	RuleGroupOrdinalBanzhaf,
	RuleGroupLexcelRank,
}

// ValidOutputFormats lists all valid output formats.
var ValidOutputFormats = map[OutputFormat]struct{}{
	CSVOut:     {},
	ParquetOut: {},
	XLSXOut:    {},
	TableOut:   {},
}

// ValidRankingModes lists all valid ranking modes.
var ValidRankingModes = map[RankingMode]struct{}{
	DenseRanking: {},
	BinRanking:   {},
	NoRanking:    {},
}
