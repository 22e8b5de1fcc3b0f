package summary

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/exclude-copy/internal/copier"
	"github.com/bethropolis/exclude-copy/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Info(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	log := &captureLogger{}

	DisplayResults(log, 3, copier.Snapshot{BytesCopied: 2048, DirsCreated: 1, FilesIgnored: 2, DirsIgnored: 1},
		1500*time.Millisecond, false)

	require.Len(t, log.lines, 2)
	assert.Equal(t, "Copied 3 file(s) (2.0 KiB), created 1 director(ies), ignored 2 file(s) and 1 director(ies).", log.lines[0])
	assert.Equal(t, "Copy complete in 1.5s.", log.lines[1])
}

func TestDisplayResults_Quiet(t *testing.T) {
	log := &captureLogger{}
	DisplayResults(log, 3, copier.Snapshot{}, time.Second, true)
	assert.Empty(t, log.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	base := filepath.FromSlash("/src")
	items := []copier.SkippedItem{
		{Path: filepath.Join(base, "z.tmp"), Reason: ignore.ReasonPattern},
		{Path: filepath.Join(base, "bin"), Reason: ignore.ReasonPattern, IsDir: true},
	}
	log := &captureLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, items, &out, base, false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Skipped DIR : ."), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "[excluded by pattern]"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Skipped FILE: ."), lines[1])
	assert.Equal(t, "--- Skipped Items (2) ---", log.lines[0])
}

func TestDisplaySkippedItems_None(t *testing.T) {
	log := &captureLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, nil, &out, "", false)

	assert.Empty(t, out.String())
	assert.Contains(t, log.lines, "No items were skipped.")
}

func TestByteCount(t *testing.T) {
	assert.Equal(t, "0 B", byteCount(0))
	assert.Equal(t, "1023 B", byteCount(1023))
	assert.Equal(t, "1.0 KiB", byteCount(1024))
	assert.Equal(t, "1.5 MiB", byteCount(1024*1024*3/2))
}
