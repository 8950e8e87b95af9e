package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempContext is a temporary file that becomes outPath once committed.
type TempContext struct {
	TmpFile *os.File
	TmpName string

	closed    bool
	committed bool
}

// NewTempContext creates a hidden temp file in the directory of outPath, so the
// final rename stays on one file system.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// Commit closes the temp file and renames it onto outPath.
func (tc *TempContext) Commit(outPath string) error {
	tc.closed = true

	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	tc.committed = true

	return nil
}

// CleanupOnError removes the temp file if *errp is set and the file was never committed.
// A file that Commit did not reach is closed here.
func (tc *TempContext) CleanupOnError(errp *error) {
	if !tc.closed {
		tc.TmpFile.Close() //nolint:gosec // best-effort cleanup
	}

	if *errp != nil && !tc.committed {
		os.Remove(tc.TmpName) //nolint:gosec // best-effort cleanup
	}
}
