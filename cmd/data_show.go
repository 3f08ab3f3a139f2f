package cmd

import (
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/workflows"
	"github.com/spf13/cobra"
)

var dataShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the local document",
	Long:  `Prints data.json. An empty list ([]) is printed when nothing has been saved yet.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.Paths.DataFilePath
		Logger.Infof("Loading local data from %s", path)

		document, err := workflows.LoadLocalData(path)
		if err != nil {
			fmt.Println(describeError("Loading "+ui.Path.Sprint(path), err))
			return nil
		}

		fmt.Print(ui.EnsureNewline(document))
		return nil
	},
}
