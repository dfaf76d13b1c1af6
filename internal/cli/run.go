package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/batchstat/internal/config"
	"github.com/nao1215/batchstat/internal/log"
	"github.com/nao1215/batchstat/internal/model"
	"github.com/nao1215/batchstat/internal/pipeline"
	"github.com/spf13/cobra"
)

// addPipelineFlags registers the flags shared by every pipeline command.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "d", config.DefaultOutputDir,
		"Directory the results file is written to")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Results file format: text, json or markdown")
	cmd.Flags().Bool("pretty", false,
		"Indent JSON output")
	cmd.Flags().StringP("encoding", "e", config.DefaultEncoding,
		"Input file encoding (e.g. utf-8, windows-1252, shift_jis)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .batchstat in current or home directory)")
}

// runPipelineCmd returns the RunE function for the pipeline of kind.
func runPipelineCmd(kind model.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runPipeline(ctx, cmd, kind, cfg)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and the
// command flags. Flags the user set explicitly override file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if len(args) != 1 {
		return nil, config.ErrNoInput
	}

	cfg := config.NewConfig()
	cfg.InputPath = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep the defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("pretty") {
		if cfg.Pretty, err = flags.GetBool("pretty"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runPipeline executes the pipeline of kind and prints the status line.
func runPipeline(ctx context.Context, cmd *cobra.Command, kind model.Kind, cfg *config.Config) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}

	fileName := format.ResultFileName(kind)
	run := pipeline.NewRun(kind, cfg.InputPath, filepath.Join(cfg.OutputDir, fileName),
		pipeline.WithEncoding(cfg.Encoding),
		pipeline.WithFormat(format, cfg.Pretty),
		pipeline.WithWarnings(cmd.OutOrStdout()),
	)

	logger.Debug("starting pipeline",
		"pipeline", kind,
		"input", cfg.InputPath,
		"output", run.OutputPath,
		"format", format,
	)

	p := pipeline.ForKind(kind, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, run); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s cancelled", kind)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), kind.SuccessMessage(fileName))
	return nil
}
