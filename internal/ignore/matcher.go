package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/exclude-copy/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes a Matcher rooted at rootDir
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &Matcher{
		rootDir: absRootDir,
		set:     NewSet(),
		logger:  &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init loads the gitignore engine when requested
func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: Initializing for root: %s", m.rootDir)
	m.logger.Debug("ignore.New: %d exclusion pattern(s): %v", m.set.Len(), m.set.Patterns())

	if m.disabled {
		m.logger.Debug("ignore.New: Matcher is disabled")
		return nil
	}
	if !m.gitIgnore {
		return nil
	}

	// The repository form loads .gitignore files from every directory on demand
	repoMatcher, repoErr := gitignore.NewRepository(m.rootDir)
	if repoErr != nil {
		if repoMatcher != nil {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
		m.logger.Warn("ignore.New: No .gitignore rules loaded for '%s': %v", m.rootDir, repoErr)
		repoMatcher = gitignore.New(nil, m.rootDir, nil)
	}
	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: .gitignore rules enabled.")

	return nil
}

// Root returns the absolute source root the matcher was built for.
func (m *Matcher) Root() string {
	return m.rootDir
}

// Set returns the exclusion set.
func (m *Matcher) Set() *Set {
	return m.set
}
