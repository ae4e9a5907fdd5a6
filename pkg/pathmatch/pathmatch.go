// Package pathmatch selects file paths by find -path globs and by file extension.
//
// Globs follow fnmatch(3) without FNM_PATHNAME:
//   - * matches any characters including /
//   - ? matches exactly one character including /
//   - [...] matches one character from the set including /
//   - \ escapes the next character
//
// This differs from Go's filepath.Match where * does not cross directory separators.
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Pattern is a compiled glob.
type Pattern struct {
	glob string
	re   *regexp.Regexp
}

// Compile compiles a single glob. A leading "./" is dropped so the pattern
// lines up with cleaned paths.
func Compile(glob string) (Pattern, error) {
	glob = strings.TrimPrefix(glob, "./")

	re, err := compile(glob)
	if err != nil {
		return Pattern{}, err
	}

	return Pattern{glob: glob, re: re}, nil
}

// String returns the glob the pattern was compiled from.
func (p Pattern) String() string {
	return p.glob
}

// Match reports whether path matches the pattern.
func (p Pattern) Match(path string) bool {
	return p.re.MatchString(path)
}

// Match reports whether path matches the glob.
func Match(glob, path string) (bool, error) {
	pattern, err := Compile(glob)
	if err != nil {
		return false, err
	}

	return pattern.Match(path), nil
}

// Matcher holds a list of compiled patterns.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher compiles every glob. All invalid globs are reported together.
func NewMatcher(globs []string) (*Matcher, error) {
	matcher := &Matcher{patterns: make([]Pattern, 0, len(globs))}

	var errs []error

	for _, glob := range globs {
		pattern, err := Compile(glob)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", glob, err))

			continue
		}

		matcher.patterns = append(matcher.patterns, pattern)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return matcher, nil
}

// Patterns returns the compiled patterns in the order they were given.
func (m *Matcher) Patterns() []Pattern {
	return m.patterns
}

// MatchAny reports whether path matches any of the patterns.
func (m *Matcher) MatchAny(path string) bool {
	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}

// Count returns, for each pattern, how many of paths it matches.
func (m *Matcher) Count(paths []string) []int {
	counts := make([]int, len(m.patterns))

	for _, path := range paths {
		for i, pattern := range m.patterns {
			if pattern.Match(path) {
				counts[i]++
			}
		}
	}

	return counts
}

var cache sync.Map //nolint:gochecknoglobals // package-level cache is appropriate for compiled regexps

// compile converts a glob to a compiled regexp.
// Results are cached for repeated use.
func compile(glob string) (*regexp.Regexp, error) {
	if v, ok := cache.Load(glob); ok {
		cached, _ := v.(*regexp.Regexp) //nolint:errcheck // type is guaranteed by cache.Store below

		return cached, nil
	}

	expr, err := toRegexp(glob)
	if err != nil {
		return nil, err
	}

	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", glob, err)
	}

	cache.Store(glob, compiled)

	return compiled, nil
}

// toRegexp converts a find -path glob pattern to a regex string.
func toRegexp(pattern string) (string, error) {
	var buf strings.Builder

	buf.WriteString("^")

	pos := 0
	for pos < len(pattern) {
		switch pattern[pos] {
		case '*':
			buf.WriteString(".*")

			pos++

		case '?':
			buf.WriteString(".")

			pos++

		case '[':
			end, err := findClosingBracket(pattern, pos)
			if err != nil {
				return "", err
			}

			class := pattern[pos : end+1]
			// Convert [!...] to [^...] for regex negation
			if len(class) > 2 && class[1] == '!' {
				class = "[^" + class[2:]
			}

			buf.WriteString(class)

			pos = end + 1

		case '\\':
			if pos+1 < len(pattern) {
				buf.WriteString(regexp.QuoteMeta(string(pattern[pos+1])))

				pos += 2
			} else {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

		default:
			buf.WriteString(regexp.QuoteMeta(string(pattern[pos])))

			pos++
		}
	}

	buf.WriteString("$")

	return buf.String(), nil
}

// findClosingBracket finds the index of the closing ] for a character class starting at pos.
func findClosingBracket(pattern string, pos int) (int, error) {
	idx := pos + 1

	// Skip leading ! (negation)
	if idx < len(pattern) && pattern[idx] == '!' {
		idx++
	}

	// Skip leading ] (literal)
	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	for idx < len(pattern) {
		if pattern[idx] == ']' {
			return idx, nil
		}

		idx++
	}

	return 0, fmt.Errorf("unclosed character class in pattern %q", pattern)
}
