// Package config holds the runtime configuration of gocaesar and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// Mode selects what the processor does with each input file.
type Mode string

const (
	// ModeEncrypt shifts letters forward by the key.
	ModeEncrypt Mode = "encrypt"
	// ModeDecrypt shifts letters backward by the key.
	ModeDecrypt Mode = "decrypt"
	// ModeAnalyse prints every candidate plaintext and ignores the key.
	ModeAnalyse Mode = "cryptanalyse"
)

// NeedsKey reports whether the mode requires a key.
func (m Mode) NeedsKey() bool {
	return m == ModeEncrypt || m == ModeDecrypt
}

// Suffixes configures output file naming in write mode.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped from files being decrypted.
	Encrypt string `mapstructure:"encrypt-ext"`
	// Decrypt is appended to decrypted files after stripping Encrypt.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config holds the application configuration.
type Config struct {
	// Key is the raw key token as given on the command line or environment.
	Key string `label:"--key" mapstructure:"key"`
	// KeyFile is a path to a file holding the key token.
	KeyFile string `label:"--key-file" mapstructure:"key-file" validate:"exclusive=Key"`

	// Show prints the configuration and exits.
	Show     bool
	Parallel int  `label:"--parallel" validate:"min=1"`
	Quiet    bool
	Verbose  bool
	Stats    bool
	Dry      bool

	// Write stores results next to the input instead of printing them.
	Write              bool
	Delete             bool
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Extensions restricts which files are accepted. Empty accepts everything.
	Extensions []string `label:"--ext" mapstructure:"ext" validate:"dive,extension"`

	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from"`
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Set by the subcommand, not by flags.
	Mode Mode `mapstructure:"-" validate:"omitempty,oneof=encrypt decrypt cryptanalyse"`

	// Positional arguments
	Files []string `label:"paths" mapstructure:"-" validate:"min=1"`
}

// Display reports whether the configuration should be printed instead of running.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags and checks the
// rules that span several fields of c.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return err
	}

	if err := registerExtension(validator); err != nil {
		return err
	}

	if errs := validator.Validate(config); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}

	if c.Mode.NeedsKey() && !c.HasKey() {
		return fmt.Errorf("%w: %s requires --key or --key-file", ErrInvalidInput, c.Mode)
	}

	if c.Write && c.Mode == ModeAnalyse {
		return fmt.Errorf("%w: --write is not supported by %s", ErrInvalidInput, c.Mode)
	}

	if c.Delete && !c.Write {
		return fmt.Errorf("%w: --delete requires --write", ErrInvalidInput)
	}

	if c.Write && c.Suffixes.Encrypt == "" && c.Suffixes.Decrypt == "" {
		return fmt.Errorf("%w: --encrypt-ext and --decrypt-ext cannot both be empty with --write", ErrInvalidInput)
	}

	return nil
}

// HasKey reports whether a key was supplied in any form.
func (c *Config) HasKey() bool {
	return c.Key != "" || c.KeyFile != ""
}
