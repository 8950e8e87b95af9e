// Package logic implements the core business logic for the decryption.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/decrypt-file/internal/config"
	"github.com/idelchi/decrypt-file/internal/encryption"
)

// Output collects the destinations a run writes to.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Run is the main logic of the application.
func Run(cfg *config.Config, out Output) error {
	start := time.Now()

	proc := encryption.NewProcessor(cfg, out.Logger)

	result, err := proc.ProcessFile(cfg.Input)
	if err != nil {
		if cfg.Stats {
			printStats(out.Stderr, result, time.Since(start))
		}

		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(out.Stdout, "Decrypted %q -> %q (%d bytes -> %d bytes)\n",
			result.Input, result.Output, result.InputSize, result.OutputSize)
	}

	if cfg.Stats {
		printStats(out.Stderr, result, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, result encryption.Result, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	//nolint:gosec // sizes are lengths of in-memory buffers
	fmt.Fprintf(w, "  Input:     %s\n", humanize.IBytes(uint64(result.InputSize)))
	//nolint:gosec // sizes are lengths of in-memory buffers
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(result.OutputSize)))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
