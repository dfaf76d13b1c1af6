package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/batchstat/internal/model"
)

// TextWriter outputs the plain results file format.
//
// Statistics:
//
//	Count: 8
//	Mean: 5.0
//	...
//	Time Elapsed: 0.0001 seconds
//
// Conversion lines read "Original: 10.0, Binary: 0b1010, Hex: 0xa" and word
// counts read "token: 3". Every report ends with the elapsed time line.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in the plain text format.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	switch report.Kind {
	case model.KindStatistics:
		if report.Statistics == nil {
			return 0, fmt.Errorf("statistics report for '%s' has no statistics", report.Source)
		}
		w.writeStatistics(&sb, report.Statistics)
	case model.KindConversion:
		w.writeConversions(&sb, report.Conversions)
	case model.KindWordCount:
		if report.WordCounts != nil {
			w.writeWordCounts(&sb, report.WordCounts)
		}
	default:
		return 0, fmt.Errorf("unsupported report kind: %s", report.Kind)
	}

	sb.WriteString(fmt.Sprintf("Time Elapsed: %s seconds\n", FormatFloat(report.ElapsedSeconds())))

	return w.output.Write([]byte(sb.String()))
}

func (w *TextWriter) writeStatistics(sb *strings.Builder, s *model.Statistics) {
	sb.WriteString(fmt.Sprintf("Count: %d\n", s.Count))
	sb.WriteString(fmt.Sprintf("Mean: %s\n", FormatFloat(s.Mean)))
	sb.WriteString(fmt.Sprintf("Median: %s\n", FormatFloat(s.Median)))
	sb.WriteString(fmt.Sprintf("Mode: %s\n", formatFloatList(s.Modes)))
	sb.WriteString(fmt.Sprintf("Variance: %s\n", FormatFloat(s.Variance)))
	sb.WriteString(fmt.Sprintf("Standard Deviation: %s\n", FormatFloat(s.StdDev)))
}

func (w *TextWriter) writeConversions(sb *strings.Builder, conversions []model.Conversion) {
	for _, c := range conversions {
		sb.WriteString(fmt.Sprintf("Original: %s, Binary: %s, Hex: %s\n",
			FormatFloat(c.Original), c.Binary, c.Hex))
	}
}

func (w *TextWriter) writeWordCounts(sb *strings.Builder, table *model.FrequencyTable[string]) {
	for _, e := range table.Entries() {
		sb.WriteString(fmt.Sprintf("%s: %d\n", e.Key, e.Count))
	}
}
