// Package ignore decides which workspace paths the linter and navigator skip.
// Rules follow gitignore conventions with "last rule wins" semantics; user
// rules come from .wflintignore and the --exclude flag and can negate the
// built-in defaults.
package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

type rule struct {
	pattern  string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher holds the combined default and user exclusion rules.
type Matcher struct {
	rules []rule
}

// defaultRules are always prepended; a negated user rule can re-include them.
var defaultRules = []string{
	".git/",
	"node_modules/",
	"vendor/",
	"dist/",
	"build/",
	"target/",
}

// NewMatcher builds a matcher from .wflintignore lines and extra exclusion
// globs supplied on the command line.
func NewMatcher(userRules []string, extraGlobs ...string) *Matcher {
	all := make([]string, 0, len(defaultRules)+len(userRules)+len(extraGlobs))
	all = append(all, defaultRules...)
	all = append(all, userRules...)
	all = append(all, extraGlobs...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}
	return &Matcher{rules: rules}
}

// Skip reports whether relPath (slash-separated, relative to the workspace
// root) should be excluded from scanning.
func (m *Matcher) Skip(relPath string, isDir bool) bool {
	relPath = normalize(relPath)
	skipped := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			skipped = !r.negated
		}
	}
	return skipped
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}
	var r rule
	if strings.HasPrefix(line, "!") {
		r.negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	line = normalize(line)
	if line == "" {
		return rule{}, false
	}
	r.pattern = line
	return r, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly {
		// Every component but the last names a directory; the last one only
		// counts when the path itself is a directory.
		parts := strings.Split(relPath, "/")
		for i := range parts {
			if i == len(parts)-1 && !isDir {
				break
			}
			if r.matchesSegments(parts[:i+1]) {
				return true
			}
		}
		return false
	}

	if r.anchored {
		return globMatch(r.pattern, relPath)
	}

	if strings.Contains(r.pattern, "/") {
		if globMatch(r.pattern, relPath) {
			return true
		}
		// Unanchored multi-segment patterns may match at any depth.
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if globMatch(r.pattern, strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	for _, segment := range strings.Split(relPath, "/") {
		if globMatch(r.pattern, segment) {
			return true
		}
	}
	return false
}

func (r rule) matchesSegments(segs []string) bool {
	if r.anchored {
		return globMatch(r.pattern, strings.Join(segs, "/"))
	}
	if strings.Contains(r.pattern, "/") {
		for i := range segs {
			if globMatch(r.pattern, strings.Join(segs[i:], "/")) {
				return true
			}
		}
		return false
	}
	return globMatch(r.pattern, segs[len(segs)-1])
}

func globMatch(pattern, value string) bool {
	ok, err := regexp.MatchString("^"+globToRegex(pattern)+"$", value)
	return err == nil && ok
}

// globToRegex translates a gitignore glob into a regular expression:
// ** crosses directory separators, * and ? do not.
func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '*' && i+1 < len(pattern) && pattern[i+1] == '*':
			b.WriteString(".*")
			i++
		case ch == '*':
			b.WriteString("[^/]*")
		case ch == '?':
			b.WriteString("[^/]")
		case strings.ContainsRune(`.+()|[]{}^$\`, rune(ch)):
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func normalize(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}
