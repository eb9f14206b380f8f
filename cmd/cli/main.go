// Package main is the entry point for the windowprice CLI.
package main

import (
	"os"

	"windowprice/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
