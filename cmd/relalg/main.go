// Package main provides the relalg command-line entrypoint.
package main

import (
	"os"

	"github.com/darkcollective/relalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
