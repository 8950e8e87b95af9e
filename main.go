// Command decrypt-file decrypts a single AES-256-CBC encrypted file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/decrypt-file/internal/commands"
	"github.com/idelchi/decrypt-file/internal/config"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return 0
		}

		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}
