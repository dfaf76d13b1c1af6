package pipeline

import (
	"io"
	"time"

	"github.com/nao1215/batchstat/internal/model"
	"github.com/nao1215/batchstat/internal/report"
)

// Run carries the state of a single pipeline invocation. Timing is local
// to the run; nothing is shared between invocations.
type Run struct {
	// Kind is the pipeline being executed.
	Kind model.Kind

	// InputPath is the file to read.
	InputPath string

	// OutputPath is the results file to write.
	OutputPath string

	// Format is the results file format.
	Format report.Format

	// Pretty enables indented JSON output.
	Pretty bool

	// Encoding is the input text encoding label.
	Encoding string

	// Warnings receives skipped-entry warnings. Nil discards them.
	Warnings io.Writer

	// Clock returns the current time. It defaults to time.Now.
	Clock func() time.Time

	// Started is when the run was created, just after argument parsing.
	Started time.Time

	// Dataset is set by ReadNumbersStep.
	Dataset *model.Dataset

	// Tokens is set by ReadTokensStep.
	Tokens *model.Tokens

	// Report is set by the computing step.
	Report *model.Report

	// BytesWritten is the size of the results file written by WriteReportStep.
	BytesWritten int

	// Err is the error that terminated the run, if any.
	Err error

	state   State
	history []State
}

// RunOption configures a Run.
type RunOption func(*Run)

// WithClock sets the time source used for elapsed-time measurement.
func WithClock(clock func() time.Time) RunOption {
	return func(r *Run) {
		if clock != nil {
			r.Clock = clock
		}
	}
}

// WithWarnings sets the destination for skipped-entry warnings.
func WithWarnings(w io.Writer) RunOption {
	return func(r *Run) {
		r.Warnings = w
	}
}

// WithEncoding sets the input text encoding label.
func WithEncoding(encoding string) RunOption {
	return func(r *Run) {
		r.Encoding = encoding
	}
}

// WithFormat sets the results file format and JSON indentation.
func WithFormat(format report.Format, pretty bool) RunOption {
	return func(r *Run) {
		r.Format = format
		r.Pretty = pretty
	}
}

// NewRun creates a Run in StateIdle and records its start time.
func NewRun(kind model.Kind, inputPath, outputPath string, opts ...RunOption) *Run {
	r := &Run{
		Kind:       kind,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Format:     report.FormatText,
		Clock:      time.Now,
		state:      StateIdle,
		history:    []State{StateIdle},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.Started = r.Clock()
	return r
}

// State returns the current state of the run.
func (r *Run) State() State {
	return r.state
}

// History returns every state the run has entered, in order.
func (r *Run) History() []State {
	out := make([]State, len(r.history))
	copy(out, r.history)
	return out
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration {
	return r.Clock().Sub(r.Started)
}

// transition moves the run to a new state if the move is allowed.
func (r *Run) transition(to State) error {
	if !isAllowedTransition(r.state, to) {
		return transitionError(r.state, to)
	}
	r.state = to
	r.history = append(r.history, to)
	return nil
}
