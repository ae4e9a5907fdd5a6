package encryption

import "errors"

var (
	// ErrOverwrite is returned when write mode would replace the input file itself.
	ErrOverwrite = errors.New("output path equals input path")
	// ErrUnknownMode is returned for a mode the processor cannot handle.
	ErrUnknownMode = errors.New("unknown mode")
)
