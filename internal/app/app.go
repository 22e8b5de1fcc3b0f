// Package app wires configuration, exclusion rules and the copier into one
// command-line run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bethropolis/exclude-copy/internal/config"
	"github.com/bethropolis/exclude-copy/internal/copier"
	"github.com/bethropolis/exclude-copy/internal/logger"
	"github.com/bethropolis/exclude-copy/internal/printer"
	"github.com/bethropolis/exclude-copy/internal/setup"
	"github.com/bethropolis/exclude-copy/internal/summary"
	"github.com/fatih/color"
)

const title = "Exclude Copy - copy a directory tree, minus the clutter"

// App encapsulates the main application functionality
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	printer *printer.Printer
	stdout  io.Writer
	stderr  io.Writer

	// interrupts overrides OS signal delivery; used by tests
	interrupts <-chan os.Signal
	wd         string
}

// New creates a new App instance writing to stdout and stderr
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)

	// An explicit log level overrides verbose/quiet
	if cfg.LogLevel != "" {
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			log.WithLevel(level)
		}
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	wd, _ := os.Getwd()

	p := printer.New().
		WithOutput(stdout).
		WithErrorOutput(stderr).
		WithColors(cfg.UseColors).
		WithJSON(cfg.JSONOutput).
		WithBaseDir(wd)

	return &App{
		cfg:     cfg,
		log:     log,
		printer: p,
		stdout:  stdout,
		stderr:  stderr,
		wd:      wd,
	}
}

// Run executes the copy and returns the process exit code
func (a *App) Run() int {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Fprintf(a.stdout, "%s version %s\n", config.AppName, a.cfg.Version)
		return 0
	}

	showChrome := !a.cfg.Quiet
	if showChrome {
		a.printer.Banner(title)
		defer a.printer.Footer()
	}

	infoLog := func(format string, args ...any) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Verbose mode enabled")
	a.log.Debug("Color output: %v", a.cfg.UseColors)
	if a.cfg.ProfileFile != "" {
		a.log.Debug("Profile: %s", a.cfg.ProfileFile)
	}

	absSource, err := filepath.Abs(a.cfg.Source)
	if err != nil {
		return a.fail("Invalid source directory path '%s': %v", a.cfg.Source, err)
	}
	absDest, err := filepath.Abs(a.cfg.Destination)
	if err != nil {
		return a.fail("Invalid destination directory path '%s': %v", a.cfg.Destination, err)
	}

	infoLog("Source directory is %q", absSource)
	infoLog("Destination directory is %q", absDest)
	if a.cfg.Recurse {
		infoLog("Directory recursion is ON")
	} else {
		infoLog("Directory recursion is OFF")
	}

	// The copier is never started against a missing source
	info, err := os.Stat(absSource)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return a.fail("Source directory %q does not exist!", absSource)
		}
		return a.fail("Could not access source directory %q: %v", absSource, err)
	}
	if !info.IsDir() {
		return a.fail("Source %q is not a directory!", absSource)
	}

	var reporter copier.Reporter = copier.NoopReporter{}
	if !a.cfg.Quiet || a.cfg.JSONOutput {
		reporter = a.printer
	}

	matcher, opts, err := setup.ConfigureCopier(setup.CopierConfig{
		Source:         absSource,
		IgnoreFile:     a.cfg.IgnoreFile,
		Exclude:        a.cfg.Exclude,
		GitIgnore:      a.cfg.GitIgnore,
		Logger:         a.log,
		Reporter:       reporter,
		ShowProgress:   a.cfg.ShowProgress && !a.cfg.Quiet,
		ProgressOutput: a.stderr,
	}, infoLog)
	if err != nil {
		return a.fail("%v", err)
	}

	c, err := copier.New(copier.Params{
		Source:      absSource,
		Destination: absDest,
		Recurse:     a.cfg.Recurse,
	}, matcher, opts...)
	if err != nil {
		return a.fail("%v", err)
	}

	count, cancelled, err := a.runCopy(c.Copy)
	if a.cfg.ShowProgress && !a.cfg.Quiet {
		fmt.Fprintln(a.stderr)
	}
	if err != nil {
		a.log.Debug("Copy failed after %v", time.Since(startTime))
		return a.fail("%v", err)
	}

	if cancelled {
		a.printer.Notice("Copy cancelled.")
	}
	a.printer.Summary(count)
	summary.DisplayResults(a.log, count, c.Stats(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, c.Skipped(), a.stderr, a.wd, a.cfg.Quiet)
	}

	return 0
}

type copyResult struct {
	count int
	err   error
}

// runCopy runs copyFn on its own goroutine while this goroutine stays
// responsive to interrupts and the timeout. Both only cancel the context;
// the copier decides where to stop.
func (a *App) runCopy(copyFn func(context.Context) (int, error)) (count int, cancelled bool, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupts := a.interrupts
	if interrupts == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(ch)
		interrupts = ch
	}

	var timeout <-chan time.Time
	if a.cfg.Timeout > 0 {
		timer := time.NewTimer(a.cfg.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	done := make(chan copyResult, 1)
	go func() {
		n, err := copyFn(ctx)
		done <- copyResult{count: n, err: err}
	}()

	for {
		select {
		case res := <-done:
			return res.count, cancelled, res.err
		case <-interrupts:
			if !cancelled {
				a.printer.Notice("Interrupt received. Cancelling!")
				cancelled = true
				cancel()
			}
		case <-timeout:
			if !cancelled {
				a.printer.Notice("Timeout of %v reached. Cancelling!", a.cfg.Timeout)
				cancelled = true
				cancel()
			}
		}
	}
}

func (a *App) fail(format string, args ...any) int {
	msg := fmt.Sprintf(format, args...)
	a.log.Debug("Fatal: %s", msg)
	a.printer.Failure("%s", msg)
	return 1
}
