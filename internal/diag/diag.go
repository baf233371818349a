// Package diag carries diagnostics out of the pure index/assembler code so
// that nothing below the CLI boundary logs directly.
package diag

import (
	"fmt"
	"os"
)

// Warning is a non-fatal diagnostic attached to a particular game, or to the
// batch as a whole when ScenarioID/GameID are empty.
type Warning struct {
	ScenarioID string
	GameID     string
	Message    string
}

func (w Warning) String() string {
	if w.ScenarioID == "" && w.GameID == "" {
		return w.Message
	}
	return fmt.Sprintf("(%s, %s): %s", w.ScenarioID, w.GameID, w.Message)
}

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// Warn logs a warning to stderr.
func Warn(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

// PrintWarnings logs every accumulated warning.
func PrintWarnings(warnings []Warning) {
	for _, w := range warnings {
		Warn(w.String())
	}
}
