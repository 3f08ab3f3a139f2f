package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/workflows"
	"github.com/spf13/cobra"
)

var dataSaveFile string

func init() {
	dataSaveCmd.Flags().StringVarP(&dataSaveFile, "file", "f", "", "read the document from this file instead of stdin")
}

var dataSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Replace the local document",
	Long: `Replaces data.json with a JSON document read from --file or stdin.

The document must be valid JSON; it is otherwise stored as given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := readDocument(dataSaveFile)
		if err != nil {
			fmt.Println(describeError("Reading the document", err))
			return nil
		}

		if !json.Valid([]byte(document)) {
			fmt.Println(ui.Failed("The document is not valid JSON"))
			fmt.Println(ui.Hint("Nothing was written to " + ui.Path.Sprint(configs.Paths.DataFilePath)))
			return nil
		}

		path := configs.Paths.DataFilePath
		Logger.Infof("Saving %s to %s", formatBytes(len(document)), path)
		if err := workflows.SaveLocalData(path, document); err != nil {
			fmt.Println(describeError("Saving", err))
			return nil
		}

		fmt.Println(ui.Done("Saved " + formatBytes(len(document)) + " to " + ui.Path.Sprint(path)))
		return nil
	},
}
