package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/logging"
	"github.com/idelchi/gocaesar/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] paths...",
		Aliases: []string{"dec"},
		Short:   "Shift every letter backward by the key",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.ModeDecrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, logging.FromContext(cmd.Context()), streams(cmd))
		},
	}

	addWriteFlags(cmd)

	return cmd
}
