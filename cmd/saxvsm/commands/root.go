// Package commands implements the saxvsm command line interface.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "saxvsm",
	Short: "SAX-VSM time-series classifier",
	Long: `saxvsm trains and runs SAX-VSM time-series classifiers.

Datasets follow the UCR convention: one sample per row, the class label in
the first column, the series values in the remaining columns. Comma- and
tab-separated files are both accepted.`,
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(inspectCmd)
}
