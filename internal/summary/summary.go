// Package summary handles display of copy results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/exclude-copy/internal/copier"
	"github.com/bethropolis/exclude-copy/internal/utils"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...any)
}

// DisplayResults logs the end results of a copy run
func DisplayResults(
	logger Logger,
	fileCount int,
	stats copier.Snapshot,
	duration time.Duration,
	quiet bool,
) {
	if quiet {
		return
	}
	logger.Info("Copied %d file(s) (%s), created %d director(ies), ignored %d file(s) and %d director(ies).",
		fileCount, byteCount(stats.BytesCopied), stats.DirsCreated, stats.FilesIgnored, stats.DirsIgnored)
	logger.Info("Copy complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every skipped entry sorted by path
func DisplaySkippedItems(
	logger Logger,
	skippedItems []copier.SkippedItem,
	output io.Writer,
	baseDir string,
	quiet bool,
) {
	infoLog := func(format string, args ...any) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		sort.Slice(skippedItems, func(i, j int) bool {
			return skippedItems[i].Path < skippedItems[j].Path
		})
		for _, item := range skippedItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n",
				typeStr,
				utils.DisplayPathFrom(baseDir, item.Path),
				item.Reason,
			)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}

// byteCount formats n using binary units.
func byteCount(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
