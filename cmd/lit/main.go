package main

import (
	"errors"
	"fmt"
	"os"

	"lit.dev/lit/internal/cli"
	"lit.dev/lit/internal/config"
	literrors "lit.dev/lit/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	config.LoadDotEnv()

	// Check for passthrough commands before processing with cobra
	if cli.HandlePassthrough(os.Args) {
		return // HandlePassthrough already exited
	}

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// The commit flow reports its own failures; everything else gets
		// a one-line error here.
		if !errors.Is(err, literrors.ErrNotCommitted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
