package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/logging"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, attachLogger)

	root.Use = "gocaesar [flags] command [flags]"
	root.Short = "Caesar cipher utility"
	root.Long = `A Caesar cipher utility for text files.

Encrypts and decrypts by shifting every Latin letter by a fixed key within its
own case; everything else is left untouched. The cryptanalyse command prints the
candidate plaintext for all 26 keys.

Every flag can also be set through the environment, e.g. GOCAESAR_KEY=3.`
	root.Example = `  gocaesar encrypt -k 3 message.txt
  gocaesar decrypt -k 3 -w letters/
  gocaesar cryptanalyse secret.txt`
	root.PersistentPostRun = func(cmd *cobra.Command, _ []string) {
		_ = logging.FromContext(cmd.Context()).Sync()
	}

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.StringP("key", "k", "", "Shift key, an integer (ignored by cryptanalyse)")
	flags.StringP("key-file", "f", "", "Path to a file holding the shift key")

	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("dry", false, "Show which files would be processed without processing them")

	flags.StringSlice("ext", []string{".txt"}, "Accepted file extensions, empty to accept any file")
	flags.StringSliceP("include", "i", nil, "Include patterns for directory walks (find -path semantics)")
	flags.StringSliceP("exclude", "e", nil, "Exclude patterns for directory walks (find -path semantics)")
	flags.String("include-from", "", "JSONC file with an array of include patterns")
	flags.String("exclude-from", "", "JSONC file with an array of exclude patterns")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewCryptanalyseCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}
