package cmd

import (
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

var remoteSetSkipTest bool

func init() {
	remoteSetCmd.Flags().BoolVar(&remoteSetSkipTest, "skip-test", false, "save without testing the connection first")
}

var remoteSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the WebDAV server and credentials",
	Long: `Tests the connection and, if it succeeds, saves the server and credentials
to config.json, replacing any previous remote. Use --skip-test to save
without contacting the server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, username, password, ok := readRemoteFlags(cmd)
		if !ok {
			return nil
		}

		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		spinner, cleanup := startSpinner("Saving WebDAV settings...")
		defer cleanup()

		if !remoteSetSkipTest {
			Logger.Infof("Testing %s before saving", server)
			if err := syncer.TestConnection(cmd.Context(), server, username, password); err != nil {
				spinner.FinalMSG = describeError("Connection test", err) + "\n" +
					ui.Hint("Nothing was saved; use "+ui.Flag.Sprint("--skip-test")+" to save anyway")
				return nil
			}
		} else {
			Logger.Debugf("Skipping connection test")
		}

		if err := syncer.SaveRemoteConfig(cmd.Context(), server, username, password); err != nil {
			spinner.FinalMSG = describeError("Saving", err)
			return nil
		}

		spinner.FinalMSG = ui.Done("WebDAV settings saved for " + ui.URL.Sprint(server))
		return nil
	},
}
