package cmd

import (
	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/workflows"
	"github.com/spf13/cobra"
)

var remoteUploadFile string

func init() {
	remoteUploadCmd.Flags().StringVarP(&remoteUploadFile, "file", "f", "", "upload this file instead of the local document")
}

var remoteUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Push the local document to the server",
	Long: `Uploads data.json (or --file) to <server>/T-Countdown/data.json,
replacing whatever is there. There is no merge: the last upload wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		spinner, cleanup := startSpinner("Uploading...")
		defer cleanup()

		var document string
		if remoteUploadFile != "" {
			document, err = readDocument(remoteUploadFile)
		} else {
			document, err = workflows.LoadLocalData(configs.Paths.DataFilePath)
		}
		if err != nil {
			spinner.FinalMSG = describeError("Reading the document", err)
			return nil
		}

		Logger.Infof("Uploading %s", formatBytes(len(document)))
		if err := syncer.Upload(cmd.Context(), document); err != nil {
			spinner.FinalMSG = describeError("Upload", err)
			return nil
		}

		spinner.FinalMSG = ui.Done("Uploaded " + formatBytes(len(document)))
		return nil
	},
}
