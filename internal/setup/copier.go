// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/exclude-copy/internal/copier"
	"github.com/bethropolis/exclude-copy/internal/ignore"
	"github.com/bethropolis/exclude-copy/internal/utils"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...any)

// CopierConfig holds all parameters needed to configure a copy run
type CopierConfig struct {
	Source           string
	IgnoreFile       string
	Exclude          []string
	GitIgnore        bool
	Logger           utils.Logger
	Reporter         copier.Reporter
	ShowProgress     bool
	ProgressOutput   io.Writer
	ProgressInterval time.Duration
}

// BuildExclusionSet merges the ignore file, if any, with the inline
// patterns.
func BuildExclusionSet(ignoreFile string, inline []string, infoLog InfoLogger) (*ignore.Set, error) {
	set := ignore.NewSet()

	if ignoreFile != "" {
		infoLog("Loading ignore file %q...", ignoreFile)
		patterns, err := ignore.LoadFile(ignoreFile)
		if err != nil {
			return nil, err
		}
		set.Add(patterns...)
	}
	set.Add(inline...)

	if set.Len() > 0 {
		infoLog("Using %d exclusion pattern(s): %v", set.Len(), set.Patterns())
	}
	return set, nil
}

// ConfigureCopier sets up the matcher and copier options from the config
func ConfigureCopier(cfg CopierConfig, infoLog InfoLogger) (*ignore.Matcher, []copier.Option, error) {
	set, err := BuildExclusionSet(cfg.IgnoreFile, cfg.Exclude, infoLog)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading exclusion patterns: %w", err)
	}

	if cfg.GitIgnore {
		infoLog("Honoring .gitignore files in the source tree.")
	}

	matcher, err := ignore.New(cfg.Source,
		ignore.WithSet(set),
		ignore.WithGitIgnore(cfg.GitIgnore),
		ignore.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	opts := []copier.Option{
		copier.WithLogger(cfg.Logger),
		copier.WithReporter(cfg.Reporter),
	}

	if cfg.ShowProgress && cfg.ProgressOutput != nil {
		out := cfg.ProgressOutput
		opts = append(opts, copier.WithProgress(func(s copier.Snapshot) {
			// Carriage return keeps the status on a single line
			fmt.Fprintf(out, "\rCopied: %d files | Dirs visited: %d | Ignored: %d files, %d dirs",
				s.FilesCopied, s.DirsVisited, s.FilesIgnored, s.DirsIgnored)
		}, cfg.ProgressInterval))
	}

	return matcher, opts, nil
}
