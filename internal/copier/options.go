package copier

import (
	"time"

	"github.com/bethropolis/exclude-copy/internal/utils"
)

const (
	defaultBufferSize       = 256 * 1024
	defaultProgressInterval = 300 * time.Millisecond
)

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(stats Snapshot)

// Options configures a Copier
type Options struct {
	Logger           utils.Logger
	Reporter         Reporter
	BufferSize       int
	ProgressFn       ProgressCallback
	ProgressInterval time.Duration
}

func defaultOptions() Options {
	return Options{
		Logger:           &utils.NoopLogger{},
		Reporter:         NoopReporter{},
		BufferSize:       defaultBufferSize,
		ProgressInterval: defaultProgressInterval,
	}
}

// Option is a functional option for configuring Options
type Option func(*Options)

// WithLogger sets a custom logger for the copier
func WithLogger(logger utils.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithReporter sets the receiver of copy events
func WithReporter(r Reporter) Option {
	return func(opts *Options) {
		if r != nil {
			opts.Reporter = r
		}
	}
}

// WithBufferSize sets the size of the buffer used to stream file contents
func WithBufferSize(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.BufferSize = n
		}
	}
}

// WithProgress adds a progress callback invoked every interval while a
// copy runs. A non-positive interval keeps the default.
func WithProgress(fn ProgressCallback, interval time.Duration) Option {
	return func(opts *Options) {
		opts.ProgressFn = fn
		if interval > 0 {
			opts.ProgressInterval = interval
		}
	}
}
