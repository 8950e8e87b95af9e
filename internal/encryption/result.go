package encryption

// Result represents the outcome of decrypting a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Input file size in bytes
	InputSize int

	// Output file size in bytes
	OutputSize int
}
