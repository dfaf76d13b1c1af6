package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/batchstat/internal/convert"
	"github.com/nao1215/batchstat/internal/loader"
	"github.com/nao1215/batchstat/internal/model"
	"github.com/nao1215/batchstat/internal/report"
	"github.com/nao1215/batchstat/internal/stats"
	"github.com/nao1215/batchstat/internal/wordcount"
)

// errNoInput is returned by a computing step that runs without loaded data.
var errNoInput = errors.New("no input loaded")

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// ReadNumbersStep loads one number per line into run.Dataset.
// Malformed lines are skipped with a warning.
type ReadNumbersStep struct {
	logger *slog.Logger
}

// NewReadNumbersStep creates a ReadNumbersStep.
func NewReadNumbersStep(logger *slog.Logger) *ReadNumbersStep {
	return &ReadNumbersStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *ReadNumbersStep) Name() string { return "read_numbers" }

// Stage returns StateReading.
func (s *ReadNumbersStep) Stage() State { return StateReading }

// Do reads the input file.
func (s *ReadNumbersStep) Do(_ context.Context, run *Run) error {
	ds, err := loader.ReadNumbers(run.InputPath, loader.Options{
		Encoding: run.Encoding,
		Warnings: run.Warnings,
	})
	if err != nil {
		return err
	}

	s.logger.Debug("numbers loaded",
		"input", run.InputPath,
		"count", ds.Len(),
		"skipped", len(ds.Skipped),
	)
	run.Dataset = ds
	return nil
}

// ReadTokensStep loads whitespace-separated tokens into run.Tokens.
type ReadTokensStep struct {
	logger *slog.Logger
}

// NewReadTokensStep creates a ReadTokensStep.
func NewReadTokensStep(logger *slog.Logger) *ReadTokensStep {
	return &ReadTokensStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *ReadTokensStep) Name() string { return "read_tokens" }

// Stage returns StateReading.
func (s *ReadTokensStep) Stage() State { return StateReading }

// Do reads the input file.
func (s *ReadTokensStep) Do(_ context.Context, run *Run) error {
	toks, err := loader.ReadTokens(run.InputPath, loader.Options{Encoding: run.Encoding})
	if err != nil {
		return err
	}

	s.logger.Debug("tokens loaded", "input", run.InputPath, "count", toks.Len())
	run.Tokens = toks
	return nil
}

// ComputeStatisticsStep derives descriptive statistics from run.Dataset.
type ComputeStatisticsStep struct {
	logger *slog.Logger
}

// NewComputeStatisticsStep creates a ComputeStatisticsStep.
func NewComputeStatisticsStep(logger *slog.Logger) *ComputeStatisticsStep {
	return &ComputeStatisticsStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *ComputeStatisticsStep) Name() string { return "compute_statistics" }

// Stage returns StateComputing.
func (s *ComputeStatisticsStep) Stage() State { return StateComputing }

// Do computes the statistics. An empty dataset fails the run.
func (s *ComputeStatisticsStep) Do(_ context.Context, run *Run) error {
	if run.Dataset == nil {
		return errNoInput
	}

	result, err := stats.Compute(run.Dataset)
	if err != nil {
		return err
	}

	run.Report = model.NewReport(model.KindStatistics, run.InputPath)
	run.Report.Statistics = result
	run.Report.Skipped = run.Dataset.Skipped

	s.logger.Debug("statistics computed", "count", result.Count, "modes", len(result.Modes))
	return nil
}

// ConvertStep renders run.Dataset in binary and hexadecimal.
type ConvertStep struct {
	logger *slog.Logger
}

// NewConvertStep creates a ConvertStep.
func NewConvertStep(logger *slog.Logger) *ConvertStep {
	return &ConvertStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *ConvertStep) Name() string { return "convert_numbers" }

// Stage returns StateComputing.
func (s *ConvertStep) Stage() State { return StateComputing }

// Do converts every value.
func (s *ConvertStep) Do(_ context.Context, run *Run) error {
	if run.Dataset == nil {
		return errNoInput
	}

	conversions, err := convert.Convert(run.Dataset.Values)
	if err != nil {
		return err
	}

	run.Report = model.NewReport(model.KindConversion, run.InputPath)
	run.Report.Conversions = conversions
	run.Report.Skipped = run.Dataset.Skipped

	s.logger.Debug("numbers converted", "count", len(conversions))
	return nil
}

// CountWordsStep tallies token frequencies from run.Tokens.
type CountWordsStep struct {
	logger *slog.Logger
}

// NewCountWordsStep creates a CountWordsStep.
func NewCountWordsStep(logger *slog.Logger) *CountWordsStep {
	return &CountWordsStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *CountWordsStep) Name() string { return "count_words" }

// Stage returns StateComputing.
func (s *CountWordsStep) Stage() State { return StateComputing }

// Do counts the tokens.
func (s *CountWordsStep) Do(_ context.Context, run *Run) error {
	if run.Tokens == nil {
		return errNoInput
	}

	table := wordcount.Count(run.Tokens.Words)

	run.Report = model.NewReport(model.KindWordCount, run.InputPath)
	run.Report.WordCounts = table

	s.logger.Debug("words counted", "tokens", run.Tokens.Len(), "distinct", table.Len())
	return nil
}

// WriteReportStep stamps the elapsed time on run.Report and writes the
// results file, replacing any previous one.
type WriteReportStep struct {
	logger *slog.Logger
}

// NewWriteReportStep creates a WriteReportStep.
func NewWriteReportStep(logger *slog.Logger) *WriteReportStep {
	return &WriteReportStep{logger: defaultLogger(logger)}
}

// Name returns the step name.
func (s *WriteReportStep) Name() string { return "write_report" }

// Stage returns StateReporting.
func (s *WriteReportStep) Stage() State { return StateReporting }

// Do writes the results file.
func (s *WriteReportStep) Do(_ context.Context, run *Run) error {
	if run.Report == nil {
		return errors.New("no results to report")
	}

	run.Report.Elapsed = run.Elapsed()

	n, err := report.WriteFile(run.OutputPath, run.Format, run.Pretty, run.Report)
	if err != nil {
		return err
	}
	run.BytesWritten = n

	s.logger.Debug("results written",
		"output", run.OutputPath,
		"format", run.Format,
		"size", humanize.Bytes(uint64(n)), //nolint:gosec // n is a non-negative byte count
		"elapsed", run.Report.Elapsed,
	)
	return nil
}
