// Package logic wires file resolution, the processor and reporting together.
package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/encryption"
	"github.com/idelchi/gocaesar/internal/filter"
)

// Run is the main logic of the application.
func Run(cfg *config.Config, log *zap.Logger, streams encryption.Streams) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	log.Debug("resolved files",
		zap.Int("scanned", scanned),
		zap.Int("selected", len(cfg.Files)),
		zap.Strings("files", cfg.Files),
	)

	proc, err := encryption.NewProcessor(cfg, log, streams)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	if cfg.Dry {
		return dryRun(cfg, proc, streams, scanned, excluded, start)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(streams.Err, scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands positional args and applies include/exclude filtering.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return 0, err
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	opts := filter.Options{
		Includes:    includes,
		Excludes:    excludes,
		HasIncludes: hasIncludes,
		Extensions:  cfg.Extensions,
	}

	// Walking a directory for decryption picks up files written by encrypt.
	if cfg.Mode == config.ModeDecrypt && cfg.Suffixes.Encrypt != "" {
		opts.StripSuffix = cfg.Suffixes.Encrypt

		if !hasIncludes {
			opts.Includes = append(opts.Includes, "*"+cfg.Suffixes.Encrypt)
			opts.HasIncludes = true
		}
	}

	files, scanned, err := filter.Resolve(cfg.Files, opts)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// loadPatterns merges CLI and file-based include/exclude patterns.
func loadPatterns(cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	return includes, excludes, nil
}

// dryRun previews what would be processed without reading or writing any file contents.
//
//nolint:unparam // signature kept for consistency with Run callers
func dryRun(
	cfg *config.Config,
	proc *encryption.Processor,
	streams encryption.Streams,
	scanned, excluded int,
	start time.Time,
) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			target := "stdout"
			if cfg.Write {
				target = fmt.Sprintf("%q", proc.OutputPath(file))
			}

			fmt.Fprintf(streams.Out, "Would process %q -> %s\n", file, target)
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(streams.Err, scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
