package logic

import (
	"errors"
	"fmt"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/encryption"
	"github.com/idelchi/gocaesar/internal/filter"
	"github.com/idelchi/gocaesar/pkg/pathmatch"
)

// ErrNoPatterns is returned by RunCheck when there is nothing to check.
var ErrNoPatterns = errors.New("no include or exclude patterns to check")

// RunCheck validates that every include/exclude pattern matches at least one file.
func RunCheck(cfg *config.Config, streams encryption.Streams) error {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return err
	}

	if len(includes) == 0 && len(excludes) == 0 {
		return ErrNoPatterns
	}

	candidates, err := filter.Walk(cfg.Files)
	if err != nil {
		return err
	}

	var failures int

	failures += checkPatterns(streams, "include", includes, candidates, cfg.Quiet)
	failures += checkPatterns(streams, "exclude", excludes, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}

// checkPatterns counts the candidates matched by each pattern.
// Returns the number of patterns that are invalid or matched zero files.
func checkPatterns(streams encryption.Streams, kind string, globs, candidates []string, quiet bool) int {
	var failures int

	valid := make([]string, 0, len(globs))

	for _, glob := range globs {
		if _, err := pathmatch.Compile(glob); err != nil {
			fmt.Fprintf(streams.Err, "%s: %s: invalid pattern: %v\n", kind, glob, err)

			failures++

			continue
		}

		valid = append(valid, glob)
	}

	matcher, err := pathmatch.NewMatcher(valid)
	if err != nil {
		fmt.Fprintf(streams.Err, "%s: %v\n", kind, err)

		return failures + len(valid)
	}

	counts := matcher.Count(candidates)

	for i, pattern := range matcher.Patterns() {
		switch {
		case counts[i] == 0:
			fmt.Fprintf(streams.Err, "%s: %s: 0 files (ERROR)\n", kind, pattern)

			failures++
		case !quiet:
			fmt.Fprintf(streams.Err, "%s: %s: %d files\n", kind, pattern, counts[i])
		}
	}

	return failures
}
