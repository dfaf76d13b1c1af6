package report

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/nao1215/batchstat/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
// Encoding goes through goccy/go-json, which is a drop-in replacement for
// encoding/json.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonWordCount is a single token frequency in JSON output.
type jsonWordCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// jsonReport is the JSON document written for a report.
// Word counts are emitted as an array so first-seen order survives.
type jsonReport struct {
	Pipeline       string               `json:"pipeline"`
	Source         string               `json:"source"`
	Statistics     *model.Statistics    `json:"statistics,omitempty"`
	Conversions    []model.Conversion   `json:"conversions,omitempty"`
	WordCounts     []jsonWordCount      `json:"word_counts,omitempty"`
	Skipped        []model.SkippedEntry `json:"skipped,omitempty"`
	ElapsedSeconds float64              `json:"elapsed_seconds"`
}

// newJSONReport converts a report into its JSON document.
func newJSONReport(report *model.Report) *jsonReport {
	doc := &jsonReport{
		Pipeline:       report.Kind.String(),
		Source:         report.Source,
		Statistics:     report.Statistics,
		Conversions:    report.Conversions,
		Skipped:        report.Skipped,
		ElapsedSeconds: report.ElapsedSeconds(),
	}
	if report.WordCounts != nil {
		for _, e := range report.WordCounts.Entries() {
			doc.WordCounts = append(doc.WordCounts, jsonWordCount{Token: e.Key, Count: e.Count})
		}
	}
	return doc
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(newJSONReport(report))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
