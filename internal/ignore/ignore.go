// Package ignore decides which entries of a source tree are left out of a
// copy.
//
// Exclusion patterns use a two-token wildcard vocabulary: '*' for any run of
// characters and '?' for a single character. They are matched
// case-insensitively against the bare name of a file or directory, never
// against its path. Optionally, .gitignore files inside the source tree are
// honored as well. The package uses the functional options pattern for
// configuration.
package ignore

// NewFromConfig creates a Matcher from a Config struct
func NewFromConfig(cfg Config) (*Matcher, error) {
	options := []Option{
		WithPatterns(cfg.Patterns...),
		WithGitIgnore(cfg.GitIgnore),
		WithDisabled(cfg.Disabled),
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.RootDir, options...)
}

// CreateDisabledMatcher returns a matcher that ignores nothing
func CreateDisabledMatcher() *Matcher {
	matcher, _ := New(".", WithDisabled(true))
	return matcher
}
