package cmd

import (
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/workflows"
	"github.com/spf13/cobra"
)

var remoteDownloadStdout bool

func init() {
	remoteDownloadCmd.Flags().BoolVar(&remoteDownloadStdout, "stdout", false, "print the document instead of replacing the local one")
}

var remoteDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Fetch the document from the server",
	Long: `Downloads <server>/T-Countdown/data.json and replaces the local data.json
with it. If nothing has been uploaded yet the result is an empty list ([]).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		if remoteDownloadStdout {
			document, err := syncer.Download(cmd.Context())
			if err != nil {
				fmt.Println(describeError("Download", err))
				return nil
			}
			fmt.Print(ui.EnsureNewline(document))
			return nil
		}

		spinner, cleanup := startSpinner("Downloading...")
		defer cleanup()

		document, err := syncer.Download(cmd.Context())
		if err != nil {
			spinner.FinalMSG = describeError("Download", err)
			return nil
		}

		path := configs.Paths.DataFilePath
		if err := workflows.SaveLocalData(path, document); err != nil {
			spinner.FinalMSG = describeError("Saving", err)
			return nil
		}

		spinner.FinalMSG = ui.Done("Downloaded " + formatBytes(len(document)) + " to " + ui.Path.Sprint(path))
		return nil
	},
}
