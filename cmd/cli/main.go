// Package main is the entry point for the lpboost CLI.
package main

import (
	"os"

	"lpboost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
