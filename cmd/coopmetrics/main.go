// Command coopmetrics is the CLI entrypoint.
package main

import (
	"os"

	"github.com/coopmetrics/coopmetrics/cmd"
	"github.com/coopmetrics/coopmetrics/internal/diag"
	"github.com/coopmetrics/coopmetrics/schema"
)

func main() {
	if err := cmd.Execute(); err != nil {
		diag.Warn(err.Error())
		os.Exit(schema.ExitCode(err))
	}
}
