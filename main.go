package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/tcountdown/cmd"
	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tcountdown",
	Short: "T-Countdown - keep your countdowns in sync over WebDAV.",
	Long: `T-Countdown stores your countdown list in a local JSON document and can
mirror it to any WebDAV server (Nextcloud, ownCloud, Jianguoyun, ...).

Usage:
  tcountdown <command> [flags]

Available Commands:
  data       Read and write the local document
  remote     Configure the WebDAV server, upload and download
  settings   Show or change preferences
  autostart  Launch T-Countdown when you log in
  history    Show recent sync operations

Run 'tcountdown help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		figure.NewColorFigure("T-Countdown", "small", "cyan", true).Print()
		fmt.Println()
		fmt.Println("Data directory: " + ui.Path.Sprint(configs.Paths.DataDir))
		fmt.Println("Run " + ui.Code.Sprint("tcountdown --help") + " to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.Commands()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
