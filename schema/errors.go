package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for each category in the error taxonomy. Call sites wrap
// one of these with fmt.Errorf("...: %w", ErrX) so errors.Is still matches
// after the wrap.
var (
	ErrInputSchema        = errors.New("input schema error")
	ErrGameSizeExceeded    = errors.New("game size exceeded")
	ErrInconsistentConfig = errors.New("inconsistent configuration")
	ErrNumericDegenerate  = errors.New("numeric degenerate condition")
	ErrInternal           = errors.New("internal invariant violation")
)

// GameError attaches a (scenario_id, game_id) identity to an Internal failure
// so the batch-level caller can report which game triggered it before
// re-raising.
type GameError struct {
	ScenarioID string
	GameID     string
	Err        error
}

func (e *GameError) Error() string {
	return fmt.Sprintf("game (%s, %s): %v", e.ScenarioID, e.GameID, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// CategoryOf maps an error to its taxonomy category, defaulting to Internal
// when none of the sentinels match.
func CategoryOf(err error) ErrorCategory {
	switch {
	case errors.Is(err, ErrInputSchema):
		return CategoryInputSchema
	case errors.Is(err, ErrGameSizeExceeded):
		return CategoryGameSizeExceeded
	case errors.Is(err, ErrInconsistentConfig):
		return CategoryInconsistentConfig
	case errors.Is(err, ErrNumericDegenerate):
		return CategoryNumericDegenerate
	default:
		return CategoryInternal
	}
}

// ExitCode maps an error category to the process exit code the CLI reports.
func ExitCode(err error) int {
	switch CategoryOf(err) {
	case CategoryInputSchema, CategoryInconsistentConfig:
		return 2
	case CategoryGameSizeExceeded:
		return 3
	default:
		return 1
	}
}
