package encryption

import "errors"

var (
	// ErrInputRead is returned when the encrypted input file cannot be read.
	ErrInputRead = errors.New("failed to read input file")
	// ErrMalformedContainer is returned when the input is too short to hold an IV.
	ErrMalformedContainer = errors.New("encrypted file is too short to contain an IV")
	// ErrCipherInit is returned when the key or IV do not have the sizes AES-256-CBC requires.
	ErrCipherInit = errors.New("failed to initialize cipher")
	// ErrDecryption is returned for any failure of the decrypt-and-unpad step.
	// A wrong password usually shows up as this error.
	ErrDecryption = errors.New("decryption failed")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when encrypted data length is not aligned with AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
