// Command gocaesar encrypts, decrypts and brute-forces text files with the Caesar cipher.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gocaesar/internal/commands"
	"github.com/idelchi/gocaesar/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown" //nolint:gochecknoglobals

func main() {
	cfg := &config.Config{}

	err := commands.NewRootCommand(cfg, version).Execute()
	if errors.Is(err, cobraext.ErrExitGracefully) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
