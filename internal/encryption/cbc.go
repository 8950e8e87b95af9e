package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// decryptCBC decrypts buf in place using AES-256 in CBC mode.
func decryptCBC(key, iv, buf []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrCipherInit, KeySize, len(key))
	}

	if len(iv) != aes.BlockSize {
		return fmt.Errorf("%w: IV must be %d bytes, got %d", ErrCipherInit, aes.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCipherInit, err)
	}

	// Ensure we have complete blocks
	if len(buf) == 0 || len(buf)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: %w (%d bytes)", ErrDecryption, ErrInvalidBlockSize, len(buf))
	}

	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, buf)

	return nil
}
