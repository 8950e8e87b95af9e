package encryption

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/decrypt-file/internal/config"
	"github.com/idelchi/decrypt-file/internal/fileutil"
)

// Processor handles the decryption of a single file.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key stores the AES-256 key derived from the password
	key []byte

	logger *slog.Logger
}

// NewProcessor creates a new Processor with the given configuration.
// The key is derived from cfg.Password up front.
func NewProcessor(cfg *config.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Processor{
		cfg:    cfg,
		key:    DeriveKey(cfg.Password),
		logger: logger,
	}
}

// Decrypt recovers the plaintext from an encrypted container.
// It takes ownership of data: the ciphertext is decrypted in place and the
// returned plaintext is a view into the same buffer.
func (p *Processor) Decrypt(data []byte) ([]byte, error) {
	container, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed container", "ciphertext_bytes", len(container.Ciphertext))

	if err := decryptCBC(p.key, container.IV, container.Ciphertext); err != nil {
		return nil, err
	}

	plaintext, err := pkcs7Unpad(container.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	p.logger.Debug("removed padding", "plaintext_bytes", len(plaintext))

	return plaintext, nil
}

// ProcessFile decrypts the file at input and writes the plaintext next to it.
// The output file is only written once the plaintext has been fully validated.
func (p *Processor) ProcessFile(input string) (Result, error) {
	outPath, err := fileutil.OutputPath(input)
	if err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(filepath.Clean(input))
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %w", ErrInputRead, input, err)
	}

	p.logger.Debug("read input", "path", input, "bytes", len(data))

	inputSize := len(data)

	plaintext, err := p.Decrypt(data)
	if err != nil {
		return Result{}, err
	}

	opts := fileutil.WriteOptions{PreserveTimestamps: p.cfg.PreserveTimestamps}

	if p.cfg.PreserveTimestamps {
		opts.ModTime, err = modTime(input)
		if err != nil {
			return Result{}, err
		}
	}

	if _, err := fileutil.WriteFile(outPath, plaintext, opts); err != nil {
		return Result{}, err
	}

	p.logger.Debug("wrote output", "path", outPath, "bytes", len(plaintext))

	return Result{
		Input:      input,
		Output:     outPath,
		InputSize:  inputSize,
		OutputSize: len(plaintext),
	}, nil
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInputRead, path, err)
	}

	return info.ModTime(), nil
}
