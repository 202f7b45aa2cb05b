// icontint converts a directory of icons to PNG and reports the dominant
// colours of each one.
package main

import (
	"os"

	"github.com/jmylchreest/icontint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
