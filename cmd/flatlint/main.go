// Package main provides the flatlint CLI.
package main

import (
	"os"

	"github.com/flatlint-labs/flatlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
