package setup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/exclude-copy/internal/copier"
	"github.com/bethropolis/exclude-copy/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(lines *[]string) InfoLogger {
	return func(format string, args ...any) {
		*lines = append(*lines, fmt.Sprintf(format, args...))
	}
}

func TestBuildExclusionSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.txt")
	require.NoError(t, os.WriteFile(path, []byte("bin\n\nobj\n  \n"), 0o644))

	var lines []string
	set, err := BuildExclusionSet(path, []string{"obj", "*.tmp", " "}, collect(&lines))

	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "bin", "obj"}, set.Patterns())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Loading ignore file")
}

func TestBuildExclusionSet_MissingFile(t *testing.T) {
	var lines []string
	_, err := BuildExclusionSet(filepath.Join(t.TempDir(), "missing"), nil, collect(&lines))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigureCopier(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("k"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "drop.tmp"), []byte("d"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(src, "bin"), 0o755))

	var progress bytes.Buffer
	var lines []string
	matcher, opts, err := ConfigureCopier(CopierConfig{
		Source:           src,
		Exclude:          []string{"*.tmp", "bin"},
		Logger:           utils.NoopLogger{},
		ShowProgress:     true,
		ProgressOutput:   &progress,
		ProgressInterval: time.Hour,
	}, collect(&lines))
	require.NoError(t, err)

	count, err := copier.Copy(context.Background(),
		copier.Params{Source: src, Destination: dst, Recurse: true}, matcher, opts...)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.FileExists(t, filepath.Join(dst, "keep.txt"))
	assert.NoFileExists(t, filepath.Join(dst, "drop.tmp"))
	assert.NoDirExists(t, filepath.Join(dst, "bin"))
	assert.True(t, strings.HasPrefix(progress.String(), "\rCopied: 1 files"), progress.String())
}

func TestConfigureCopier_BadIgnoreFile(t *testing.T) {
	var lines []string
	_, _, err := ConfigureCopier(CopierConfig{
		Source:     t.TempDir(),
		IgnoreFile: filepath.Join(t.TempDir(), "missing"),
	}, collect(&lines))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading exclusion patterns")
}
