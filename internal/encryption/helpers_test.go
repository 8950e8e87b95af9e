package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/decrypt-file/internal/config"
)

// containerCase is a known-answer vector from testdata/containers.yml.
type containerCase struct {
	Description string `yaml:"description"`
	Password    string `yaml:"password"`
	Plaintext   string `yaml:"plaintext"`
	Container   string `yaml:"container"`
}

// keyCase is a known-answer vector from testdata/keys.yml.
type keyCase struct {
	Description string `yaml:"description"`
	Password    string `yaml:"password"`
	Key         string `yaml:"key"`
}

func loadGolden[T any](t *testing.T, path string) []T {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // test helper reads known testdata files
	require.NoError(t, err)

	var cases []T
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases, "no cases in %s", path)

	return cases
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

// encrypt produces an IV || ciphertext container the way the paired encrypter does.
func encrypt(t *testing.T, password string, plaintext []byte) []byte {
	t.Helper()

	block, err := aes.NewCipher(DeriveKey(password))
	require.NoError(t, err)

	iv := make([]byte, aes.BlockSize)
	_, err = io.ReadFull(rand.Reader, iv)
	require.NoError(t, err)

	padding := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(bytes.Clone(plaintext), bytes.Repeat([]byte{byte(padding)}, padding)...)

	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	return out
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()

	b := make([]byte, n)
	_, err := io.ReadFull(rand.Reader, b)
	require.NoError(t, err)

	return b
}

func newTestProcessor(password string) *Processor {
	cfg := &config.Config{Password: password, LogLevel: "warn"}

	return NewProcessor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
