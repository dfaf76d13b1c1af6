package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use errors.Is.
var (
	// ErrNoInput is returned when no input file path is given.
	ErrNoInput = errors.New("no input file specified")

	// ErrInvalidFormat is returned when the report format is not text, json or markdown.
	ErrInvalidFormat = errors.New("invalid report format")

	// ErrInvalidEncoding is returned when the input encoding label is not recognized.
	ErrInvalidEncoding = errors.New("invalid input encoding")

	// ErrInvalidOutputDir is returned when the output directory does not
	// exist or is not a directory.
	ErrInvalidOutputDir = errors.New("output directory does not exist")
)
