// Command filesum prints a quick summary of the files below a directory.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/filesum/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Build-time variable
var version = "unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
