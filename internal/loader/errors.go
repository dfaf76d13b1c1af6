package loader

import "errors"

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnknownEncoding is returned when Options.Encoding names an
	// encoding that golang.org/x/text does not know.
	ErrUnknownEncoding = errors.New("unknown text encoding")
)
