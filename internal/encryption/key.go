package encryption

import "crypto/sha256"

// KeySize is the AES-256 key size in bytes.
const KeySize = sha256.Size

// DeriveKey turns a password into an AES-256 key.
// The key is the SHA-256 digest of the password's UTF-8 bytes, with no salt
// and no iterations, so files produced by the paired encrypter stay readable.
func DeriveKey(password string) []byte {
	digest := sha256.Sum256([]byte(password))

	return digest[:]
}
