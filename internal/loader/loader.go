package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/batchstat/internal/model"
)

// maxLineSize bounds a single input line. Longer lines fail the read.
const maxLineSize = 16 * 1024 * 1024

// Options configures how input files are read.
type Options struct {
	// Encoding is the input text encoding label. Empty means UTF-8.
	Encoding string

	// Warnings receives one line per skipped malformed entry.
	// A nil writer discards warnings.
	Warnings io.Writer
}

// DefaultOptions returns options that decode UTF-8 and print warnings to stdout.
func DefaultOptions() Options {
	return Options{
		Encoding: DefaultEncoding,
		Warnings: os.Stdout,
	}
}

// open opens path and returns a decoded reader over its contents.
// The caller must close the returned file.
func open(path string, encoding string) (*os.File, io.Reader, error) {
	f, err := os.Open(path) //nolint:gosec // reading a user-specified input file is the purpose of this tool
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}

	r, err := decodingReader(f, encoding)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, r, nil
}

// ReadNumbers reads one number per line from path.
//
// Each line is trimmed and parsed as a float64. Lines that fail to parse,
// or parse to NaN or an infinity, are recorded in Dataset.Skipped and a
// warning naming the file and the line is written to opts.Warnings.
func ReadNumbers(path string, opts Options) (*model.Dataset, error) {
	f, r, err := open(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds := &model.Dataset{
		Source: path,
		Values: make([]float64, 0),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())

		v, ok := parseNumber(text)
		if !ok {
			ds.Skipped = append(ds.Skipped, model.SkippedEntry{Line: lineNo, Text: text})
			if opts.Warnings != nil {
				fmt.Fprintf(opts.Warnings,
					"Warning: Invalid data found in '%s'. Skipping entry: %s (line %d)\n",
					path, text, lineNo)
			}
			continue
		}
		ds.Values = append(ds.Values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	return ds, nil
}

// parseNumber parses a trimmed line into a finite float64.
func parseNumber(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ReadTokens reads the entire file at path and splits it on whitespace.
// Every non-space run is a token, including numbers and words with
// punctuation attached.
func ReadTokens(path string, opts Options) (*model.Tokens, error) {
	f, r, err := open(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	return &model.Tokens{
		Source: path,
		Words:  strings.Fields(string(content)),
	}, nil
}
