// Package main provides the convertnumbers program, which writes
// binary and hexadecimal forms of one number per line.
//
// Usage:
//
//	convertnumbers <input-file>
package main

import (
	"os"

	"github.com/nao1215/batchstat/internal/cli"
	"github.com/nao1215/batchstat/internal/model"
)

func main() {
	os.Exit(cli.Execute(cli.NewStandaloneCmd("convertnumbers", model.KindConversion)))
}
