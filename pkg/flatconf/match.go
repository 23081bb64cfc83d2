package flatconf

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// normalizePath converts a file path to the slash-separated relative form
// used for matching.
func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "/")
}

// MatchPattern reports whether a single glob pattern matches the
// normalized path. A pattern without a separator also matches against
// the basename, so "*.jsx" applies at any depth.
func MatchPattern(pattern, path string) bool {
	path = normalizePath(path)
	if ok, err := doublestar.Match(pattern, path); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, err := doublestar.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}

// Matches reports whether the block applies to the given file path: at
// least one files pattern matches and no ignores pattern does.
func (b *ConfigBlock) Matches(path string) bool {
	p := normalizePath(path)

	matched := false
	for _, pattern := range b.Files {
		if MatchPattern(pattern, p) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, pattern := range b.Ignores {
		if MatchPattern(pattern, p) {
			return false
		}
	}
	return true
}

// ValidPattern reports whether a glob pattern is syntactically valid.
func ValidPattern(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}
