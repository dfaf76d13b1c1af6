// Package main provides the computestats program, which writes
// descriptive statistics of one number per line.
//
// Usage:
//
//	computestats <input-file>
package main

import (
	"os"

	"github.com/nao1215/batchstat/internal/cli"
	"github.com/nao1215/batchstat/internal/model"
)

func main() {
	os.Exit(cli.Execute(cli.NewStandaloneCmd("computestats", model.KindStatistics)))
}
