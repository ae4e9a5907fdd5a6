package encryption

// Result represents the outcome of processing a single file.
type Result struct {
	// Position of the file in the input list
	Index int

	// Input file path
	Input string

	// Output file path, empty when printing
	Output string

	// Transformed content, set when printing
	Text string

	// Output size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}
