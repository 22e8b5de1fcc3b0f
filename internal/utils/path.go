package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DisplayPath shortens path for console output by replacing the working
// directory prefix with ".". Paths outside the working directory are
// returned unchanged.
func DisplayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	return DisplayPathFrom(wd, path)
}

// DisplayPathFrom is DisplayPath with an explicit base directory.
func DisplayPathFrom(base, path string) string {
	if base == "" {
		return path
	}
	base = filepath.Clean(base)
	if path == base {
		return "."
	}
	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if strings.HasPrefix(path, prefix) {
		return "." + string(filepath.Separator) + path[len(prefix):]
	}
	return path
}
