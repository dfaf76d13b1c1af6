// Package main provides the wordcount program, which writes
// the frequency of every whitespace-separated token.
//
// Usage:
//
//	wordcount <input-file>
package main

import (
	"os"

	"github.com/nao1215/batchstat/internal/cli"
	"github.com/nao1215/batchstat/internal/model"
)

func main() {
	os.Exit(cli.Execute(cli.NewStandaloneCmd("wordcount", model.KindWordCount)))
}
