// Package main is the entry point for the fabcost CLI.
package main

import (
	"os"

	"fabcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
