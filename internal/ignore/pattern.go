package ignore

import (
	"regexp"
	"strings"
)

// Match reports whether name matches the wildcard pattern. '*' matches any
// run of characters (including none) and '?' matches exactly one character.
// Every other character is literal. The comparison is case-insensitive and
// anchored at both ends, so the whole name must be consumed.
func Match(name, pattern string) bool {
	return compile(pattern).MatchString(name)
}

// MatchAny reports whether name matches at least one of patterns. Blank
// patterns are skipped and the rest are trimmed before matching.
func MatchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if Match(name, p) {
			return true
		}
	}
	return false
}

// compile translates a wildcard pattern into an anchored expression.
// QuoteMeta never fails to produce a valid expression, so MustCompile
// cannot panic here.
func compile(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	b.WriteString(`(?is)^`)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}
