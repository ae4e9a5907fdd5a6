package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/logging"
	"github.com/idelchi/gocaesar/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] paths...",
		Aliases: []string{"enc"},
		Short:   "Shift every letter forward by the key",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.ModeEncrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, logging.FromContext(cmd.Context()), streams(cmd))
		},
	}

	addWriteFlags(cmd)

	return cmd
}
