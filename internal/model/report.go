package model

import "time"

// Report is the result of one pipeline invocation, ready to be written.
// Exactly one of Statistics, Conversions or WordCounts is populated,
// matching Kind.
type Report struct {
	// Kind is the pipeline that produced the report.
	Kind Kind `json:"-"`

	// Source is the input file path.
	Source string `json:"source"`

	// Statistics is set for KindStatistics.
	Statistics *Statistics `json:"statistics,omitempty"`

	// Conversions is set for KindConversion.
	Conversions []Conversion `json:"conversions,omitempty"`

	// WordCounts is set for KindWordCount.
	WordCounts *FrequencyTable[string] `json:"-"`

	// Skipped lists malformed input lines, for numeric pipelines.
	Skipped []SkippedEntry `json:"skipped,omitempty"`

	// Elapsed is the wall-clock time between argument parsing and the
	// moment just before the results file is written.
	Elapsed time.Duration `json:"-"`
}

// NewReport creates an empty Report for the given pipeline and source.
func NewReport(kind Kind, source string) *Report {
	return &Report{
		Kind:   kind,
		Source: source,
	}
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (r *Report) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}
