package cmd

import (
	"github.com/spf13/cobra"
)

// DataCmd groups commands for the local document.
var DataCmd = &cobra.Command{
	Use:   "data",
	Short: "Read and write the local countdown document",
	Long: `Reads and writes data.json in the tcountdown data directory.

The data directory is ~/Documents/T-Countdown unless TCOUNTDOWN_HOME is set.

Examples:
  # Print the local document
  tcountdown data show

  # Replace the local document from a file
  tcountdown data save --file countdowns.json

  # Replace the local document from stdin
  cat countdowns.json | tcountdown data save`,
}

func init() {
	addLoggingFlags(DataCmd)
	DataCmd.AddCommand(dataShowCmd)
	DataCmd.AddCommand(dataSaveCmd)
}

func resetDataState() {
	dataSaveFile = ""
}
