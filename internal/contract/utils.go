package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Satisfaction-rate band labels used when coloring axiom summary rows for
// terminal display.
const (
	CriticalValue = "Critical" // satisfaction_rate undefined (triggered_pairs == 0)
	HighValue     = "High"     // satisfaction_rate >= 0.8
	ModerateValue = "Moderate" // satisfaction_rate >= 0.5
	LowValue      = "Low"      // satisfaction_rate < 0.5
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)
	HighColor     = color.New(color.FgGreen, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgCyan)
)

// GetPlainLabel returns a plain text band label for an axiom satisfaction
// rate. A nil rate (triggered_pairs == 0) is reported as Critical, since an
// axiom rule with nothing to trigger against carries no supporting evidence.
func GetPlainLabel(rate *float64) string {
	switch {
	case rate == nil:
		return CriticalValue
	case *rate >= 0.8:
		return HighValue
	case *rate >= 0.5:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(rate *float64) string {
	text := GetPlainLabel(rate)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when filePath is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
