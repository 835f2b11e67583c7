package main

import (
	"os"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if !logging.IsTerminal(os.Stderr) {
		errors.DisableColors()
	}

	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
