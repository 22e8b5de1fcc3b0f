// Package copier mirrors a directory tree into a destination, leaving out
// entries rejected by an Excluder.
//
// The traversal is depth-first and single-threaded. Within each directory
// the subdirectories are processed before the files. Cancellation is
// cooperative: the context is checked when a directory is entered and again
// before its files are copied, never between two files.
package copier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/exclude-copy/internal/ignore"
)

// ReasonDestination marks a source directory skipped because it is the
// destination root nested inside the source tree.
const ReasonDestination ignore.Reason = "destination directory"

// Copier copies one source tree per Params.
type Copier struct {
	params   Params
	excluder Excluder
	options  Options
	stats    Stats
	tracker  *SkippedTracker
	bufPool  sync.Pool
}

// New validates params and returns a Copier. A nil excluder copies
// everything.
func New(params Params, excluder Excluder, opts ...Option) (*Copier, error) {
	if !filepath.IsAbs(params.Source) {
		return nil, fmt.Errorf("copier: source %q: %w", params.Source, ErrRelativePath)
	}
	if !filepath.IsAbs(params.Destination) {
		return nil, fmt.Errorf("copier: destination %q: %w", params.Destination, ErrRelativePath)
	}
	params.Source = filepath.Clean(params.Source)
	params.Destination = filepath.Clean(params.Destination)
	if params.Source == params.Destination {
		return nil, fmt.Errorf("copier: %q: %w", params.Source, ErrSameDirectory)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if excluder == nil {
		excluder = ignore.CreateDisabledMatcher()
	}

	c := &Copier{
		params:   params,
		excluder: excluder,
		options:  options,
		tracker:  NewSkippedTracker(64),
	}
	bufferSize := options.BufferSize
	c.bufPool.New = func() any {
		b := make([]byte, bufferSize)
		return &b
	}
	return c, nil
}

// Copy is a convenience wrapper around New and (*Copier).Copy.
func Copy(ctx context.Context, params Params, excluder Excluder, opts ...Option) (int, error) {
	c, err := New(params, excluder, opts...)
	if err != nil {
		return 0, err
	}
	return c.Copy(ctx)
}

// Copy runs the traversal from the source root and returns the number of
// files copied. A cancelled context is not an error: the affected subtrees
// contribute zero to the count.
func (c *Copier) Copy(ctx context.Context) (int, error) {
	startTime := time.Now()
	c.options.Logger.Debug("copier.Copy started. Source: %s, Destination: %s, Recurse: %v",
		c.params.Source, c.params.Destination, c.params.Recurse)

	if c.options.ProgressFn != nil {
		stop := c.startProgress()
		defer stop()
	}

	count, err := c.copyTree(ctx, c.params.Source)

	c.options.Logger.Debug("copier.Copy finished in %s: count=%d err=%v", time.Since(startTime), count, err)
	return count, err
}

// Stats returns the current counters.
func (c *Copier) Stats() Snapshot {
	return c.stats.Snapshot()
}

// Skipped returns every entry left out so far.
func (c *Copier) Skipped() []SkippedItem {
	return c.tracker.Items()
}

func (c *Copier) copyTree(ctx context.Context, currentDir string) (int, error) {
	if ctx.Err() != nil {
		c.options.Logger.Debug("copier: cancelled before %q", currentDir)
		return 0, nil
	}

	info, err := os.Stat(currentDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("copier: '%s': %w", currentDir, ErrSourceNotFound)
		}
		return 0, fmt.Errorf("copier: failed to access '%s': %w", currentDir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("copier: '%s': %w", currentDir, ErrNotDirectory)
	}
	c.stats.DirsVisited.Add(1)

	relativeDir, err := filepath.Rel(c.params.Source, currentDir)
	if err != nil {
		return 0, fmt.Errorf("copier: failed to compute relative path for '%s': %w", currentDir, err)
	}
	destDir := filepath.Join(c.params.Destination, relativeDir)

	if err := c.ensureDir(destDir); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(currentDir)
	if err != nil {
		return 0, fmt.Errorf("copier: failed to read directory '%s': %w", currentDir, err)
	}
	dirs, files := c.classify(currentDir, entries)

	total := 0
	if c.params.Recurse {
		for _, dir := range dirs {
			if dir == c.params.Destination {
				c.options.Logger.Debug("copier: not descending into destination %q", dir)
				c.tracker.Track(dir, ReasonDestination, true)
				continue
			}
			if ignored, reason := c.excluder.ShouldIgnore(dir, true); ignored {
				c.tracker.Track(dir, reason, true)
				c.stats.DirsIgnored.Add(1)
				c.options.Reporter.IgnoredDirectory(dir)
				continue
			}

			n, err := c.copyTree(ctx, dir)
			if err != nil {
				return 0, err
			}
			total += n
		}
	}

	// A cancelled subtree reports nothing, including what its children copied
	if ctx.Err() != nil {
		c.options.Logger.Debug("copier: cancelled before files of %q", currentDir)
		return 0, nil
	}

	copied := 0
	for _, file := range files {
		if ignored, reason := c.excluder.ShouldIgnore(file, false); ignored {
			c.tracker.Track(file, reason, false)
			c.stats.FilesIgnored.Add(1)
			c.options.Reporter.IgnoredFile(file)
			continue
		}

		if err := c.copyFile(file, destDir); err != nil {
			return 0, err
		}
		copied++
	}

	return total + copied, nil
}

// ensureDir creates dir and its missing parents. An existing directory is
// left alone.
func (c *Copier) ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("copier: destination '%s': %w", dir, ErrNotDirectory)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("copier: failed to access destination '%s': %w", dir, err)
	}

	c.options.Reporter.CreatingDirectory(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("copier: failed to create destination directory '%s': %w", dir, err)
	}
	c.stats.DirsCreated.Add(1)
	return nil
}

// classify splits entries into absolute directory and file paths. Symbolic
// links are classified by their target; devices, pipes and sockets are
// skipped.
func (c *Copier) classify(parent string, entries []fs.DirEntry) (dirs, files []string) {
	for _, entry := range entries {
		path := filepath.Join(parent, entry.Name())
		mode := entry.Type()

		switch {
		case mode.IsDir():
			dirs = append(dirs, path)
		case mode&fs.ModeSymlink != 0:
			target, err := os.Stat(path)
			if err == nil && target.IsDir() {
				dirs = append(dirs, path)
			} else {
				files = append(files, path)
			}
		case mode.IsRegular():
			files = append(files, path)
		default:
			c.options.Logger.Warn("Skipping '%s': not a regular file (%s)", path, mode)
		}
	}
	return dirs, files
}

func (c *Copier) startProgress() (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(c.options.ProgressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.options.ProgressFn(c.stats.Snapshot())
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		c.options.ProgressFn(c.stats.Snapshot())
	}
}
