// Package commands provides the command-line interface for the decrypt-file tool.
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/decrypt-file/internal/config"
)

// preRun returns a PreRunE handler that resolves positional args into cfg
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Password = args[0]
		cfg.Input = args[1]

		return cobraext.Validate(cfg, cfg)
	}
}

// newLogger builds the diagnostic logger for a run.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
}
