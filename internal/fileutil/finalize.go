// Package fileutil provides the output side of a decryption run:
// deriving the output path and writing the plaintext atomically.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Suffix is appended to the input file name to form the output file name.
const Suffix = ".clear"

var (
	// ErrInvalidPath is returned when no file name can be extracted from the input path.
	ErrInvalidPath = errors.New("input path has no file name")
	// ErrOutputWrite is returned when the plaintext cannot be persisted.
	ErrOutputWrite = errors.New("failed to write output file")
)

// OutputPath returns the sibling path <dir>/<name><Suffix> for the given input path.
// Trailing separators and trailing "." components are dropped; the rest of
// the directory part is kept as given.
func OutputPath(input string) (string, error) {
	trimmed := trimTrailing(input)
	if trimmed == "" || trimmed == filepath.VolumeName(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	switch filepath.Base(trimmed) {
	case ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	return trimmed + Suffix, nil
}

// trimTrailing strips separators and "." components from the end of path,
// so "a/b/./" names the same file as "a/b".
func trimTrailing(path string) string {
	const separators = "/" + string(filepath.Separator)

	for {
		path = strings.TrimRight(path, separators)

		dot := strings.TrimSuffix(path, ".")
		if dot == path || dot == "" || !strings.ContainsAny(dot[len(dot)-1:], separators) {
			return path
		}

		path = dot
	}
}

// WriteOptions controls how WriteFile finalizes the output.
type WriteOptions struct {
	// Perm is the mode of the written file. Zero means 0600.
	Perm os.FileMode

	// PreserveTimestamps copies ModTime onto the output file.
	PreserveTimestamps bool
	ModTime            time.Time
}

// WriteFile writes data to outPath through a temporary sibling file and renames it into place.
// An existing file at outPath is replaced. On failure no file is left at the temporary path.
// It returns the size of the written file.
func WriteFile(outPath string, data []byte, opts WriteOptions) (size int64, err error) {
	tc, err := NewTempContext(outPath)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOutputWrite, outPath, err)
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("%w %q: writing content: %w", ErrOutputWrite, outPath, err)
	}

	const ownerReadWrite = 0o600

	perm := opts.Perm
	if perm == 0 {
		perm = ownerReadWrite
	}

	if err = tc.TmpFile.Chmod(perm); err != nil {
		return 0, fmt.Errorf("%w %q: setting file permissions: %w", ErrOutputWrite, outPath, err)
	}

	if err = tc.Commit(outPath); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOutputWrite, outPath, err)
	}

	size, err = finalize(outPath, opts)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOutputWrite, outPath, err)
	}

	return size, nil
}

// finalize applies the requested timestamps to the renamed output and reports its size.
func finalize(outPath string, opts WriteOptions) (int64, error) {
	if opts.PreserveTimestamps {
		if err := os.Chtimes(outPath, opts.ModTime, opts.ModTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output: %w", err)
	}

	return info.Size(), nil
}
