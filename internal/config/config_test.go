package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default OutputDir is the current directory", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputDir != "." {
			t.Errorf("expected OutputDir to be '.', got '%s'", cfg.OutputDir)
		}
	})

	t.Run("default Format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != "text" {
			t.Errorf("expected Format to be 'text', got '%s'", cfg.Format)
		}
	})

	t.Run("default Encoding is utf-8", func(t *testing.T) {
		t.Parallel()
		if cfg.Encoding != "utf-8" {
			t.Errorf("expected Encoding to be 'utf-8', got '%s'", cfg.Encoding)
		}
	})

	t.Run("default Verbose and Pretty are false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose || cfg.Pretty {
			t.Error("expected Verbose and Pretty to be false")
		}
	})
}

// TestConfigValidate tests each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	notADir := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(notADir, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "valid configuration",
			modify:  func(_ *Config) {},
			wantErr: nil,
		},
		{
			name:    "missing input",
			modify:  func(c *Config) { c.InputPath = "" },
			wantErr: ErrNoInput,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Format = "xml" },
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "markdown format",
			modify:  func(c *Config) { c.Format = "markdown" },
			wantErr: nil,
		},
		{
			name:    "unknown encoding",
			modify:  func(c *Config) { c.Encoding = "klingon" },
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "empty output dir",
			modify:  func(c *Config) { c.OutputDir = "" },
			wantErr: ErrInvalidOutputDir,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.OutputDir = filepath.Join(tmpDir, "missing") },
			wantErr: ErrInvalidOutputDir,
		},
		{
			name:    "output dir is a file",
			modify:  func(c *Config) { c.OutputDir = notADir },
			wantErr: ErrInvalidOutputDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.InputPath = "data.txt"
			cfg.OutputDir = tmpDir
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected XDG config dir to end with %q, got %q", AppName, dir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".batchstat")
		content := "output_dir: results\nformat: json\nencoding: windows-1252\npretty: true\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.OutputDir != "results" || cf.Format != "json" || cf.Encoding != "windows-1252" {
			t.Errorf("unexpected file contents: %+v", cf)
		}
		if cf.Pretty == nil || !*cf.Pretty {
			t.Error("expected pretty to be true")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".batchstat")
		if err := os.WriteFile(path, []byte("format: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("overrides set fields only", func(t *testing.T) {
		t.Parallel()

		pretty := true
		cfg := NewConfig()
		cf := &File{Format: "markdown", Pretty: &pretty}
		cf.Apply(cfg)

		if cfg.Format != "markdown" {
			t.Errorf("expected format markdown, got %q", cfg.Format)
		}
		if !cfg.Pretty {
			t.Error("expected pretty to be applied")
		}
		if cfg.OutputDir != DefaultOutputDir || cfg.Encoding != DefaultEncoding {
			t.Errorf("unset fields should keep defaults: %+v", cfg)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		var cf *File
		cfg := NewConfig()
		cf.Apply(cfg)

		if *cfg != *NewConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("format: text\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q", path, got)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty result, got %q", got)
		}
	})
}
