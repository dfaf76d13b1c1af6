package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nao1215/batchstat/internal/model"
)

// Format selects the results file format.
type Format string

const (
	// FormatText is the plain line-oriented format.
	FormatText Format = "text"

	// FormatJSON is structured JSON.
	FormatJSON Format = "json"

	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned for a format name that has no writer.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat converts a user-supplied name to a Format.
// An empty name selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (use text, json or markdown)", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension, including the dot, for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ResultFileName returns the fixed results file name for a pipeline in this format.
func (f Format) ResultFileName(kind model.Kind) string {
	return kind.ResultBaseName() + f.Extension()
}

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format Format, output io.Writer, pretty bool) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(output), nil
	case FormatJSON:
		if pretty {
			return NewJSONWriter(output, WithPrettyPrint()), nil
		}
		return NewJSONWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile renders report in the given format and writes it to path,
// replacing any existing file. Nothing is written if rendering fails.
func WriteFile(path string, format Format, pretty bool, report *model.Report) (int, error) {
	var buf bytes.Buffer

	w, err := NewWriter(format, &buf, pretty)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(report); err != nil {
		return 0, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	//nolint:gosec // results files are meant to be readable by other tools
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write results file: %w", err)
	}
	return buf.Len(), nil
}
