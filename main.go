// main holds the entry logic for the gitpulse CLI.
package main

import (
	"github.com/gitpulse/gitpulse/cmd"
	"github.com/gitpulse/gitpulse/internal/contract"
)

// main runs the root command and reports any failure that escaped the
// subcommand handlers.
func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run gitpulse", err)
	}
}
