package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for batchstat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batchstat",
		Short: "Batch statistics, number conversion and word counting",
		Long: `batchstat reads a text file, computes a result in memory and writes it
to a fixed-name results file in the output directory.

Pipelines:
  stats      descriptive statistics of one number per line
  convert    binary and hexadecimal forms of one number per line
  wordcount  frequency of every whitespace-separated token

Defaults can be set in a .batchstat configuration file; run
"batchstat init" to create one.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewWordCountCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs cmd and returns the process exit code.
// A failure is reported once on stderr as "Error: <message>".
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
