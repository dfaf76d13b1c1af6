// Package main provides the entry point for the batchstat CLI.
//
// batchstat runs one of three batch pipelines over a text file and writes
// the result to a fixed-name file in the output directory.
//
// Usage:
//
//	batchstat stats <input-file>
//	batchstat convert <input-file>
//	batchstat wordcount <input-file>
//
// See --help for all available options.
package main

import (
	"os"

	"github.com/nao1215/batchstat/internal/cli"
)

// main is the entry point for batchstat.
func main() {
	os.Exit(cli.Execute(cli.NewRootCmd()))
}
