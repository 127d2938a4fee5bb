// Package main is the entry point for the Game Deal Hunter CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dealhunter/internal/common"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := cmd.Execute(); err != nil {
		// the session already told the user why login ended
		if !errors.Is(err, common.ErrLoginAttemptsExhausted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
