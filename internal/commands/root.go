package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/decrypt-file/internal/config"
	"github.com/idelchi/decrypt-file/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// Flags can also be set through DECRYPT_FILE_* environment variables.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "decrypt-file [flags] PASSWORD FILE"
	root.Short = "AES-256-CBC decrypt a file"
	root.Long = `Decrypts a file produced by encrypt-file.
The key is SHA-256(PASSWORD) and FILE holds a 16-byte IV followed by the ciphertext.
The plaintext is saved next to the input as <FILE>.clear.`

	root.Args = cobra.ExactArgs(2) //nolint:mnd
	root.PreRunE = preRun(cfg)
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		return logic.Run(cfg, logic.Output{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: newLogger(cmd, cfg),
		})
	}

	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")
	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().Bool("stats", false, "Print size and duration statistics to stderr")
	root.Flags().BoolP("preserve-timestamps", "p", false, "Copy the modification time of the input onto the output")
	root.Flags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")

	return root
}
