package walker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are names never published from the public directory.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".DS_Store",
	"Thumbs.db",
	".env",
}

// shouldExcludeName reports whether a file or directory name is on the
// default exclusion list. Excluded directories are skipped as a subtree.
func shouldExcludeName(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath, then its base name, against each doublestar
// pattern.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError is returned by ValidatePatterns.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "walker: invalid glob pattern " + `"` + e.Pattern + `"`
}
