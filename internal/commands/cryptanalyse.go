package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/logging"
	"github.com/idelchi/gocaesar/internal/logic"
)

// NewCryptanalyseCommand creates a new cobra command printing all candidate plaintexts.
func NewCryptanalyseCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "cryptanalyse [flags] paths...",
		Aliases: []string{"analyse", "crack"},
		Short:   "Print the decryption under every possible key",
		Long: `Decrypts each input with all 26 keys, in ascending key order, and prints every
candidate for inspection. No attempt is made to pick the right one.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.ModeAnalyse),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, logging.FromContext(cmd.Context()), streams(cmd))
		},
	}
}
