// Package encryption decrypts files produced by the paired AES-256-CBC encrypter.
// The key is the SHA-256 digest of a password, and each file is a 16-byte IV
// followed by PKCS#7-padded ciphertext. The format carries no MAC.
package encryption
