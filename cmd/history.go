package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/PolarWolf314/tcountdown/internal/audit"
	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyJSON  bool
	historyLimit int
)

// HistoryCmd lists recorded sync operations.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync operations",
	Long: `Lists the tests, uploads and downloads recorded in history.jsonl, oldest
first. Recording can be turned off with history = false in settings.toml.

Examples:
  # Show the last 20 operations
  tcountdown history

  # Show everything as JSON
  tcountdown history --limit 0 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.Paths.HistoryFilePath
		Logger.Debugf("Reading history from %s", path)

		entries, err := audit.ReadEntries(path)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read history: %v", err)
		}
		entries = audit.Tail(entries, historyLimit)

		if historyJSON {
			if entries == nil {
				entries = []audit.Entry{}
			}
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println(ui.Info.Sprint("-") + " No sync operations recorded yet")
			return nil
		}

		printHistoryTable(entries)
		return nil
	},
}

func init() {
	addLoggingFlags(HistoryCmd)
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output in JSON format")
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "show at most this many entries (0 for all)")
}

func resetHistoryState() {
	historyJSON = false
	historyLimit = 20
}

func printHistoryTable(entries []audit.Entry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOPERATION\tRESULT\tSTATUS\tBYTES\tSERVER")

	for _, e := range entries {
		result := ui.Success.Sprint("ok")
		if !e.Success {
			result = ui.Error.Sprint("failed")
		}

		status := "-"
		if e.Status != 0 {
			status = strconv.Itoa(e.Status)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			formatTimestamp(e.Timestamp), e.Operation, result, status, e.Bytes, e.Server)
	}

	_ = w.Flush()
}

// formatTimestamp shows history times in local time, falling back to the
// stored text when it cannot be parsed.
func formatTimestamp(ts string) string {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
