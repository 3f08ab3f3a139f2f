package cmd

import (
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

var remoteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved WebDAV server",
	Long:  `Removes the server and credentials from config.json. The remote document is left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		if err := syncer.ClearRemoteConfig(cmd.Context()); err != nil {
			fmt.Println(describeError("Clearing", err))
			return nil
		}

		fmt.Println(ui.Done("WebDAV settings cleared"))
		return nil
	},
}
