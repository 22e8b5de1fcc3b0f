package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bethropolis/exclude-copy/internal/app"
	"github.com/bethropolis/exclude-copy/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "\aerror: %v\n", err)
		os.Exit(2)
	}

	os.Exit(app.New(cfg, os.Stdout, os.Stderr).Run())
}
