package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/batchstat/internal/loader"
	"github.com/nao1215/batchstat/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "batchstat"

	// DefaultOutputDir writes results files into the current working directory.
	DefaultOutputDir = "."

	// DefaultFormat is the plain text results file format.
	DefaultFormat = string(report.FormatText)

	// DefaultEncoding is the input text encoding.
	DefaultEncoding = loader.DefaultEncoding
)

// Config holds all options for one pipeline invocation.
// It is populated from the configuration file and CLI flags, then passed
// to the pipeline; nothing here is global state.
type Config struct {
	// InputPath is the file to read.
	InputPath string

	// OutputDir is the directory the fixed-name results file is written to.
	OutputDir string

	// Format is the results file format: text, json or markdown.
	Format string

	// Pretty enables indented JSON output. Ignored for other formats.
	Pretty bool

	// Encoding is the input file text encoding label, e.g. "utf-8" or "windows-1252".
	Encoding string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Encoding:  DefaultEncoding,
	}
}

// XDGConfigDir returns the XDG config directory for batchstat.
// On Linux: ~/.config/batchstat
// On macOS: ~/Library/Application Support/batchstat
// On Windows: %LOCALAPPDATA%\batchstat
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return f, nil
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if _, err := c.ReportFormat(); err != nil {
		return err
	}

	if err := loader.ValidateEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Encoding)
	}

	if c.OutputDir == "" {
		return ErrInvalidOutputDir
	}
	info, err := os.Stat(c.OutputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidOutputDir, c.OutputDir)
	}

	return nil
}
