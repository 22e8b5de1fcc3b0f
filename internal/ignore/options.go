package ignore

import "github.com/bethropolis/exclude-copy/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithPatterns adds wildcard patterns to the exclusion set.
func WithPatterns(patterns ...string) Option {
	return func(m *Matcher) {
		m.set.Add(patterns...)
	}
}

// WithSet replaces the exclusion set.
func WithSet(set *Set) Option {
	return func(m *Matcher) {
		if set != nil {
			m.set = set
		}
	}
}

// WithGitIgnore enables .gitignore rules found in the source tree.
func WithGitIgnore(enabled bool) Option {
	return func(m *Matcher) {
		m.gitIgnore = enabled
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
