// Package config provides configuration structures and utilities for batchstat.
// It defines the options shared by all pipelines (output directory, report
// format, input encoding, verbosity) and loads optional defaults from a YAML
// configuration file.
package config
