package encryption

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/fileutil"
	"github.com/idelchi/gocaesar/pkg/caesar"
)

// Streams are the destinations for program output and per-file error reports.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Processor handles the encryption, decryption and analysis of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key is the parsed shift, unused for analysis
	key int

	log     *zap.Logger
	streams Streams

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// It resolves the key for modes that need one.
func NewProcessor(cfg *config.Config, log *zap.Logger, streams Streams) (*Processor, error) {
	processor := &Processor{
		cfg:     cfg,
		log:     log,
		streams: streams,
		results: make(chan Result, len(cfg.Files)),
	}

	switch {
	case cfg.Mode.NeedsKey():
		key, err := cfg.ResolveKey()
		if err != nil {
			return nil, err
		}

		processor.key = key

		log.Debug("resolved key",
			zap.Int("key", key),
			zap.Int("normalized", caesar.Normalize(key)),
		)
	case cfg.Mode == config.ModeAnalyse:
		if cfg.HasKey() {
			log.Warn("cryptanalysis does not need a key; the supplied key is ignored")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	return processor, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Results are reported in input order.
// Returns the number of successfully processed files, the number of errors and the output size.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		pending := make(map[int]Result)
		next := 0

		for result := range p.results {
			pending[result.Index] = result

			for {
				res, ok := pending[next]
				if !ok {
					break
				}

				delete(pending, next)
				next++

				if res.Error != nil {
					errored++

					fmt.Fprintf(p.streams.Err, "Error processing %q: %v\n", res.Input, res.Error)

					continue
				}

				processed++

				totalSize += res.OutputSize

				p.report(res)
			}
		}
	}()

	for idx, file := range p.cfg.Files {
		group.Go(func() error {
			res := p.processFile(file)
			res.Index = idx

			p.results <- res

			return res.Error
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// report emits a successful result: the text itself when printing,
// or a progress line (and the optional deletion) when writing files.
func (p *Processor) report(res Result) {
	if !p.cfg.Write {
		if len(p.cfg.Files) > 1 {
			fmt.Fprintf(p.streams.Out, "==> %s <==\n", res.Input)
		}

		fmt.Fprint(p.streams.Out, res.Text)

		return
	}

	if !p.cfg.Quiet {
		fmt.Fprintf(p.streams.Out, "Processed %q -> %q\n", res.Input, res.Output)
	}

	if !p.cfg.Delete {
		return
	}

	if err := os.Remove(res.Input); err != nil {
		fmt.Fprintf(p.streams.Err, "Error deleting %q: %v\n", res.Input, err)

		return
	}

	if !p.cfg.Quiet {
		fmt.Fprintf(p.streams.Out, "Deleted %q\n", res.Input)
	}
}

// processFile reads one file and transforms it according to the mode.
func (p *Processor) processFile(filename string) Result {
	p.log.Debug("processing file", zap.String("path", filename), zap.String("mode", string(p.cfg.Mode)))

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return Result{Input: filename, Error: fmt.Errorf("reading file: %w", err)}
	}

	text := p.Transform(filename, string(data))

	if !p.cfg.Write {
		return Result{Input: filename, Text: text, OutputSize: int64(len(text))}
	}

	outPath := p.OutputPath(filename)
	if filepath.Clean(outPath) == filepath.Clean(filename) {
		return Result{Input: filename, Error: fmt.Errorf("%w: %q", ErrOverwrite, filename)}
	}

	size, err := fileutil.WriteAtomic(filename, outPath, []byte(text), p.cfg.PreserveTimestamps)
	if err != nil {
		return Result{Input: filename, Error: err}
	}

	return Result{Input: filename, Output: outPath, OutputSize: size}
}

// Transform applies the configured mode to text. The name is only used to label analysis output.
func (p *Processor) Transform(name, text string) string {
	switch p.cfg.Mode {
	case config.ModeEncrypt:
		return caesar.Encrypt(text, p.key)
	case config.ModeDecrypt:
		return caesar.Decrypt(text, p.key)
	default:
		return FormatCandidates(name, caesar.Enumerate(text))
	}
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) OutputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Mode == config.ModeDecrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
