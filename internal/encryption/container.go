package encryption

import (
	"crypto/aes"
	"fmt"
)

// Container is an encrypted file split into its IV and ciphertext.
// Both slices alias the buffer passed to ParseContainer.
type Container struct {
	IV         []byte
	Ciphertext []byte
}

// ParseContainer splits data into a 16-byte IV header and the ciphertext that follows it.
// Block alignment of the ciphertext is left to the decryptor.
func ParseContainer(data []byte) (Container, error) {
	if len(data) < aes.BlockSize {
		return Container{}, fmt.Errorf("%w: got %d bytes", ErrMalformedContainer, len(data))
	}

	return Container{
		IV:         data[:aes.BlockSize],
		Ciphertext: data[aes.BlockSize:],
	}, nil
}
