package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger builds the diagnostics logger for a command from the persistent
// --verbose and --quiet flags. Diagnostics go to the command's stderr so that
// stdout carries only status lines and palettes.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "icontint",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
