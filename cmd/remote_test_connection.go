package cmd

import (
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

var remoteTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Check a WebDAV server and credentials",
	Long:  `Sends a PROPFIND to the server with the given credentials. Nothing is saved.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, username, password, ok := readRemoteFlags(cmd)
		if !ok {
			return nil
		}

		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		spinner, cleanup := startSpinner("Testing connection...")
		defer cleanup()

		Logger.Infof("Testing %s as %s", server, username)
		if err := syncer.TestConnection(cmd.Context(), server, username, password); err != nil {
			spinner.FinalMSG = describeError("Connection test", err)
			return nil
		}

		spinner.FinalMSG = ui.Done("Connected to " + ui.URL.Sprint(server))
		return nil
	},
}
