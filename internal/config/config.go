// Package config turns command-line arguments and an optional YAML profile
// into the settings of one copy run.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bethropolis/exclude-copy/internal/logger"
	"github.com/mattn/go-isatty"
)

// AppName is the name shown in usage and version output.
const AppName = "exclude-copy"

var (
	ErrMissingSource      = errors.New("source directory is required")
	ErrMissingDestination = errors.New("destination directory is required")
)

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Config holds all application configuration settings
type Config struct {
	// Copy settings
	Source      string
	Destination string
	Recurse     bool
	IgnoreFile  string
	Exclude     []string
	GitIgnore   bool
	ProfileFile string

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Processing settings
	ShowProgress bool
	Timeout      time.Duration
	ShowSkipped  bool
	JSONOutput   bool

	// Version info
	ShowVersion bool
	Version     string
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse reads args (without the program name). Usage and parse errors are
// written to output. -h yields flag.ErrHelp.
func Parse(args []string, output io.Writer) (*Config, error) {
	c := &Config{
		Version: Version,
	}

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s (version %s):\n", AppName, c.Version)
		fmt.Fprintf(fs.Output(), "  %s [flags] <source> <destination>\n\n", AppName)
		fmt.Fprintf(fs.Output(), "Copies a directory tree, skipping files and directories whose name matches an exclusion pattern.\n")
		fmt.Fprintf(fs.Output(), "Patterns support '*' (any run of characters) and '?' (one character) and are case-insensitive.\n\n")
		fs.PrintDefaults()
	}

	var exclude stringList

	fs.StringVar(&c.Source, "source", "", "Source directory to copy from")
	fs.StringVar(&c.Source, "s", "", "Shorthand for -source")
	fs.StringVar(&c.Destination, "dest", "", "Destination directory to copy to (created if missing)")
	fs.StringVar(&c.Destination, "d", "", "Shorthand for -dest")
	fs.BoolVar(&c.Recurse, "recurse", true, "Copy subdirectories recursively")
	fs.BoolVar(&c.Recurse, "r", true, "Shorthand for -recurse")
	fs.StringVar(&c.IgnoreFile, "ignore-file", "", "File with one exclusion pattern per line")
	fs.StringVar(&c.IgnoreFile, "i", "", "Shorthand for -ignore-file")
	fs.Var(&exclude, "exclude", "Exclusion pattern (repeatable)")
	fs.Var(&exclude, "x", "Shorthand for -exclude")
	fs.BoolVar(&c.GitIgnore, "gitignore", false, "Also honor .gitignore files found in the source tree")
	fs.StringVar(&c.ProfileFile, "config", "", "YAML profile providing defaults for this run")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages and per-file output")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.JSONOutput, "json", false, "Write copy events as JSON lines")
	fs.BoolVar(&c.ShowProgress, "progress", false, "Show progress information")
	fs.DurationVar(&c.Timeout, "timeout", 0, "Cancel the copy after this long (e.g., '30s', '5m')")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "List skipped files and directories at the end")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if c.Source == "" && len(rest) > 0 {
		c.Source, rest = rest[0], rest[1:]
	}
	if c.Destination == "" && len(rest) > 0 {
		c.Destination, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("config: unexpected arguments: %s", strings.Join(rest, " "))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	c.Exclude = exclude
	if c.ProfileFile != "" {
		profile, err := LoadProfile(c.ProfileFile)
		if err != nil {
			return nil, err
		}
		profile.apply(c, set)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.UseColors = !c.NoColor && !c.JSONOutput && isTerminal(os.Stdout.Fd())

	return c, nil
}

// Validate checks required settings. Version requests need nothing else.
func (c *Config) Validate() error {
	if c.ShowVersion {
		return nil
	}
	if strings.TrimSpace(c.Source) == "" {
		return ErrMissingSource
	}
	if strings.TrimSpace(c.Destination) == "" {
		return ErrMissingDestination
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative: %v", c.Timeout)
	}
	return nil
}
