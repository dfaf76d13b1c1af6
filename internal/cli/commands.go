package cli

import (
	"strings"

	"github.com/nao1215/batchstat/internal/model"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats <input-file>",
		Aliases: []string{"statistics"},
		Short:   "Compute descriptive statistics of a list of numbers",
		Long: `Stats reads one number per line and writes the count, mean, median,
mode, population variance and standard deviation to StatisticsResults.txt.

Lines that are not numbers are skipped with a warning. An input file
without any valid number is an error.

Examples:
  batchstat stats numbers.txt
  batchstat stats --format json --pretty -d out numbers.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runPipelineCmd(model.KindStatistics),
	}
	addPipelineFlags(cmd)
	return cmd
}

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <input-file>",
		Aliases: []string{"conversion"},
		Short:   "Convert numbers to binary and hexadecimal",
		Long: `Convert reads one number per line, truncates each toward zero and
writes its binary and hexadecimal forms to ConversionResults.txt.

Lines that are not numbers are skipped with a warning. Values outside
the 64-bit signed integer range are an error.

Examples:
  batchstat convert numbers.txt
  batchstat convert --format markdown numbers.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runPipelineCmd(model.KindConversion),
	}
	addPipelineFlags(cmd)
	return cmd
}

// NewWordCountCmd creates the wordcount command.
func NewWordCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wordcount <input-file>",
		Aliases: []string{"words"},
		Short:   "Count the occurrences of every word in a text file",
		Long: `Wordcount splits a text file on whitespace and writes every distinct
token with its count, in order of first appearance, to WordCountResults.txt.

Tokens are case-sensitive and keep their punctuation.

Examples:
  batchstat wordcount essay.txt
  batchstat wordcount -e windows-1252 legacy.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runPipelineCmd(model.KindWordCount),
	}
	addPipelineFlags(cmd)
	return cmd
}

// NewStandaloneCmd creates a root command that runs a single pipeline,
// for the computestats, convertnumbers and wordcount programs.
func NewStandaloneCmd(program string, kind model.Kind) *cobra.Command {
	var sub *cobra.Command
	switch kind {
	case model.KindStatistics:
		sub = NewStatsCmd()
	case model.KindConversion:
		sub = NewConvertCmd()
	default:
		sub = NewWordCountCmd()
	}

	cmd := &cobra.Command{
		Use:           program + " <input-file>",
		Short:         sub.Short,
		Long:          strings.ReplaceAll(sub.Long, "batchstat "+sub.Name(), program),
		Version:       getVersion(),
		Args:          cobra.ExactArgs(1),
		RunE:          runPipelineCmd(kind),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	addPipelineFlags(cmd)

	return cmd
}
