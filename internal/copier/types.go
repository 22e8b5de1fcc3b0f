package copier

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bethropolis/exclude-copy/internal/ignore"
)

var (
	// ErrSourceNotFound is returned when a directory to copy does not exist.
	ErrSourceNotFound = errors.New("source directory does not exist")
	// ErrNotDirectory is returned when a path to copy is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
	// ErrRelativePath is returned when Params carries a non-absolute path.
	ErrRelativePath = errors.New("path must be absolute")
	// ErrSameDirectory is returned when source and destination are the same.
	ErrSameDirectory = errors.New("source and destination are the same directory")
)

// Params describes one copy run. It is read-only once Copy starts.
type Params struct {
	Source      string
	Destination string
	Recurse     bool
}

// Excluder decides whether an entry is left out of the copy.
type Excluder interface {
	ShouldIgnore(path string, isDir bool) (bool, ignore.Reason)
}

// Reporter receives a notification for every decision the copier makes.
// Calls happen on the copy goroutine, in traversal order.
type Reporter interface {
	CreatingDirectory(path string)
	IgnoredDirectory(path string)
	IgnoredFile(path string)
	CopyingFile(src, dst string)
}

// NoopReporter discards all events.
type NoopReporter struct{}

func (NoopReporter) CreatingDirectory(string)   {}
func (NoopReporter) IgnoredDirectory(string)    {}
func (NoopReporter) IgnoredFile(string)         {}
func (NoopReporter) CopyingFile(string, string) {}

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason ignore.Reason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason ignore.Reason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	out := make([]SkippedItem, len(st.items))
	copy(out, st.items)
	return out
}

// Stats holds running counters. They are updated by the copy goroutine and
// may be read concurrently by a progress callback.
type Stats struct {
	FilesCopied  atomic.Int64
	BytesCopied  atomic.Int64
	FilesIgnored atomic.Int64
	DirsCreated  atomic.Int64
	DirsIgnored  atomic.Int64
	DirsVisited  atomic.Int64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	FilesCopied  int64
	BytesCopied  int64
	FilesIgnored int64
	DirsCreated  int64
	DirsIgnored  int64
	DirsVisited  int64
}

// Snapshot loads every counter.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FilesCopied:  s.FilesCopied.Load(),
		BytesCopied:  s.BytesCopied.Load(),
		FilesIgnored: s.FilesIgnored.Load(),
		DirsCreated:  s.DirsCreated.Load(),
		DirsIgnored:  s.DirsIgnored.Load(),
		DirsVisited:  s.DirsVisited.Load(),
	}
}
