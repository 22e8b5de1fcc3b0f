package ignore

import (
	"github.com/bethropolis/exclude-copy/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Reason explains why an entry was ignored.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonPattern   Reason = "excluded by pattern"
	ReasonGitIgnore Reason = "ignored by .gitignore"
)

// Matcher decides whether a file or directory under the source root is
// skipped. It combines the exclusion set with optional .gitignore rules.
type Matcher struct {
	// The core gitignore object handling repository rules, nil unless enabled
	repoIgnore gitignore.GitIgnore

	rootDir   string
	set       *Set
	gitIgnore bool
	logger    utils.Logger
	disabled  bool
}

// Config holds configuration options for the matcher
type Config struct {
	RootDir   string
	Patterns  []string
	GitIgnore bool
	Logger    utils.Logger
	Disabled  bool
}
