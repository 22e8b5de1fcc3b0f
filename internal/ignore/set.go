package ignore

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Set is the exclusion set: a de-duplicated collection of wildcard patterns
// compiled once and matched against single path segments. A Set must not be
// modified once a copy has started.
type Set struct {
	compiled map[string]*regexp.Regexp
}

// NewSet builds a Set from patterns. Blank patterns are dropped.
func NewSet(patterns ...string) *Set {
	s := &Set{compiled: make(map[string]*regexp.Regexp, len(patterns))}
	s.Add(patterns...)
	return s
}

// Add trims and inserts patterns, ignoring blanks and duplicates.
func (s *Set) Add(patterns ...string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := s.compiled[p]; ok {
			continue
		}
		s.compiled[p] = compile(p)
	}
}

// Len returns the number of distinct patterns.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.compiled)
}

// Patterns returns the patterns in sorted order.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.compiled))
	for p := range s.compiled {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether name matches any pattern in the set.
func (s *Set) Matches(name string) bool {
	if s == nil {
		return false
	}
	for _, re := range s.compiled {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// LoadFile reads a newline-delimited ignore file. Each line is trimmed and
// blank lines are skipped; no other syntax is interpreted.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to open ignore file '%s': %w", path, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ignore: failed to read ignore file '%s': %w", path, err)
	}
	return patterns, nil
}
