package ignore

import (
	"path/filepath"
)

// ShouldIgnore reports whether the entry at path should be skipped and why.
// Exclusion patterns are matched against the final path segment only, so a
// pattern like "node_modules" applies at every depth.
func (m *Matcher) ShouldIgnore(path string, isDir bool) (bool, Reason) {
	if m == nil || m.disabled {
		return false, ReasonNone
	}

	absPath := path
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(m.rootDir, path)
	}
	absPath = filepath.Clean(absPath)

	// Never ignore the root itself
	if absPath == m.rootDir {
		return false, ReasonNone
	}

	name := filepath.Base(absPath)
	if m.set.Matches(name) {
		m.logger.Debug("ignore.ShouldIgnore: %q matched an exclusion pattern", name)
		return true, ReasonPattern
	}

	if m.repoIgnore != nil && m.ignoredByGit(absPath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: %q ignored by .gitignore rules", absPath)
		return true, ReasonGitIgnore
	}

	return false, ReasonNone
}

func (m *Matcher) ignoredByGit(absPath string, isDir bool) (ignored bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", absPath, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Absolute(absPath, isDir)
	if match == nil {
		return false
	}
	return match.Ignore()
}
