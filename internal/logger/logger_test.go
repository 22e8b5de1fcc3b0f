package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 5, 7, 42*int(time.Millisecond), time.UTC)
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.now = fixedClock

	log.Info("copied %d files", 3)

	assert.Equal(t, "[09:05:07.042 INFO] copied 3 files\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false).WithLevel(LevelWarn)

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	out := buf.String()
	assert.NotContains(t, out, "DEBUG")
	assert.NotContains(t, out, "INFO")
	assert.Contains(t, out, "WARN] warn")
	assert.Contains(t, out, "ERROR] error")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)

	log.Debug("details")

	assert.Contains(t, buf.String(), "DEBUG] details")
	assert.True(t, log.Enabled(LevelDebug))
}

func TestLogger_None(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false).WithLevel(LevelNone)

	log.Error("nothing")

	assert.Empty(t, buf.String())
	assert.False(t, log.Enabled(LevelError))
}

func TestLogger_Colors(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, true)

	log.Error("boom")

	assert.True(t, strings.Contains(buf.String(), "\x1b["), "expected ANSI escape in %q", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		hasError bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"off", LevelNone, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
