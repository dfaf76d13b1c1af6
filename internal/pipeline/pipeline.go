package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/batchstat/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against the run.
	// Any returned error terminates the run.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string

	// Stage returns the state the run is in while the step executes.
	Stage() State
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence, moving the run through its states.
//
// The first failing step, a cancelled context or an out-of-order stage
// terminates the run; the error is stored in run.Err and returned.
// On success the run ends in StateTerminated with a nil error.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("pipeline: nil run")
	}
	if run.State() != StateIdle {
		return transitionError(run.State(), StateReading)
	}

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Debug("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return p.fail(run, ctx.Err())
		default:
		}

		if run.State() != step.Stage() {
			if err := run.transition(step.Stage()); err != nil {
				return p.fail(run, err)
			}
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"state", run.State(),
			"input", run.InputPath,
		)

		if err := step.Do(ctx, run); err != nil {
			// Reported by the caller.
			p.logger.Debug("step failed",
				"step", step.Name(),
				"input", run.InputPath,
				"error", err,
			)
			return p.fail(run, err)
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	if err := run.transition(StateTerminated); err != nil {
		return err
	}
	return nil
}

// fail records err on the run and terminates it.
func (p *Pipeline) fail(run *Run, err error) error {
	run.Err = err
	if !IsTerminal(run.State()) {
		_ = run.transition(StateTerminated)
	}
	return err
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// ForKind builds the standard read, compute and report pipeline for kind.
func ForKind(kind model.Kind, opts ...Option) *Pipeline {
	p := New(opts...)

	switch kind {
	case model.KindStatistics:
		p.AddSteps(
			NewReadNumbersStep(p.logger),
			NewComputeStatisticsStep(p.logger),
		)
	case model.KindConversion:
		p.AddSteps(
			NewReadNumbersStep(p.logger),
			NewConvertStep(p.logger),
		)
	case model.KindWordCount:
		p.AddSteps(
			NewReadTokensStep(p.logger),
			NewCountWordsStep(p.logger),
		)
	}
	p.AddStep(NewWriteReportStep(p.logger))

	return p
}

// NewStatistics builds the descriptive statistics pipeline.
func NewStatistics(opts ...Option) *Pipeline {
	return ForKind(model.KindStatistics, opts...)
}

// NewConversion builds the number conversion pipeline.
func NewConversion(opts ...Option) *Pipeline {
	return ForKind(model.KindConversion, opts...)
}

// NewWordCount builds the word counting pipeline.
func NewWordCount(opts ...Option) *Pipeline {
	return ForKind(model.KindWordCount, opts...)
}
