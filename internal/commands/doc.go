// Package commands provides the command-line interface for the gocaesar tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - cryptanalysis (all 26 candidate plaintexts)
//   - checking include/exclude patterns
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/encryption"
	"github.com/idelchi/gocaesar/internal/logging"
)

// attachLogger builds the logger from the bound --verbose flag and stores it
// in the command context.
func attachLogger(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(viper.GetBool("verbose"))
	if err != nil {
		return err
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	return nil
}

// preRun returns a PreRunE handler that records the mode, resolves positional
// args into cfg.Files and validates the configuration.
func preRun(cfg *config.Config, mode config.Mode) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Mode = mode

		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cobraext.Validate(cfg, cfg)
	}
}

// streams returns the output destinations of cmd.
func streams(cmd *cobra.Command) encryption.Streams {
	return encryption.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// addWriteFlags registers the flags controlling file output.
func addWriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("write", "w", false, "Write results next to the input files instead of printing them")
	cmd.Flags().Bool("delete", false, "Delete the original file after a successful write")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")
	cmd.Flags().String("encrypt-ext", ".caesar", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
}
