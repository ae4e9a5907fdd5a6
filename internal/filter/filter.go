// Package filter turns positional arguments into the list of text files to process.
//
// Explicit files are taken as given, subject only to the extension rule.
// Directories are walked recursively and every file is checked against
// include/exclude patterns (find -path semantics) and the extension rule.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/idelchi/gocaesar/pkg/pathmatch"
)

var (
	// ErrFileNotFound is returned when a positional path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrExtension is returned when an explicit file has a disallowed extension.
	ErrExtension = errors.New("unsupported file extension")
	// ErrNoFiles is returned when nothing matched.
	ErrNoFiles = errors.New("no files matched")
)

// Options controls how arguments are resolved.
type Options struct {
	Includes []string
	Excludes []string

	// HasIncludes indicates whether include filtering was requested,
	// regardless of whether the pattern list is empty.
	HasIncludes bool

	// Extensions lists accepted file extensions such as ".txt". Empty accepts all.
	Extensions []string

	// StripSuffix is removed from a file name before its extension is checked,
	// so "notes.txt.caesar" counts as a ".txt" file.
	StripSuffix string
}

// Filter selects files based on include/exclude patterns and extensions.
// Empty includes means "match all". Excludes always win.
type Filter struct {
	includes   *pathmatch.Matcher
	excludes   *pathmatch.Matcher
	extensions pathmatch.Extensions
	opts       Options
}

// New compiles the options into a reusable filter.
func New(opts Options) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(opts.Includes)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{
		includes:   inc,
		excludes:   exc,
		extensions: pathmatch.NewExtensions(opts.Extensions, opts.StripSuffix),
		opts:       opts,
	}, nil
}

// Match reports whether the slash-separated path should be included.
func (f *Filter) Match(path string) bool {
	included := !f.opts.HasIncludes || f.includes.MatchAny(path)
	excluded := f.excludes.MatchAny(path)

	return included && !excluded && f.Accepts(path)
}

// Accepts reports whether path carries one of the allowed extensions.
func (f *Filter) Accepts(path string) bool {
	return f.extensions.Match(filepath.ToSlash(path))
}

// Resolve takes positional args (files/directories) and returns the files to process
// in argument order, without duplicates, together with the number of candidates scanned.
func Resolve(args []string, opts Options) (files []string, scanned int, err error) {
	flt, err := New(opts)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %q", ErrFileNotFound, arg)
		}

		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			if !flt.Accepts(arg) {
				return nil, 0, fmt.Errorf("%w: %q (allowed: %s)", ErrExtension, arg, flt.extensions)
			}

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// Walk returns every regular file below the given args, without filtering.
func Walk(args []string) ([]string, error) {
	var paths []string

	seen := make(map[string]struct{})

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, arg)
		}

		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			if _, ok := seen[arg]; !ok {
				seen[arg] = struct{}{}
				paths = append(paths, filepath.ToSlash(arg))
			}

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			clean := filepath.ToSlash(filepath.Clean(path))
			if _, ok := seen[clean]; !ok {
				seen[clean] = struct{}{}
				paths = append(paths, clean)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	return paths, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		// Use forward slashes for pattern matching consistency.
		if !flt.Match(filepath.ToSlash(filepath.Clean(path))) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
