package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/autostart"
	"github.com/PolarWolf314/tcountdown/internal/configs"
	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

// newAutostart is replaced in tests.
var newAutostart = autostart.New

// AutostartCmd groups the launch-at-login commands.
var AutostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Launch T-Countdown when you log in",
	Long: `Registers or removes tcountdown under the current user's Run key.

The entry launches the tcountdown executable with no arguments, which
only prints the banner and the data directory. It does not upload or
download anything; a desktop front end built on this binary is what makes
the entry useful.

Only Windows supports autostart. Elsewhere, disable always succeeds and
enable reports that the feature is unavailable.`,
}

func init() {
	addLoggingFlags(AutostartCmd)
	AutostartCmd.AddCommand(autostartStatusCmd)
	AutostartCmd.AddCommand(autostartEnableCmd)
	AutostartCmd.AddCommand(autostartDisableCmd)
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether autostart is enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := newAutostart(configs.AppName).Enabled()
		if err != nil {
			fmt.Println(ui.Failed("Could not read the autostart setting"))
			fmt.Println(ui.Hint(ui.Muted.Sprint(err.Error())))
			return nil
		}

		if enabled {
			fmt.Println(ui.Done("Autostart is enabled"))
		} else {
			fmt.Println(ui.Info.Sprint("-") + " Autostart is disabled")
		}
		return nil
	},
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start T-Countdown at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutostart(true)
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting T-Countdown at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutostart(false)
	},
}

func setAutostart(enabled bool) error {
	Logger.Infof("Setting autostart to %t", enabled)

	err := newAutostart(configs.AppName).SetEnabled(enabled)
	switch {
	case errors.Is(err, kerrors.ErrAutostartUnsupported):
		fmt.Println(ui.Failed("Autostart is only supported on Windows"))
		return nil
	case err != nil:
		fmt.Println(ui.Failed("Could not change the autostart setting"))
		fmt.Println(ui.Hint(ui.Muted.Sprint(err.Error())))
		return nil
	}

	if enabled {
		fmt.Println(ui.Done("Autostart enabled"))
	} else {
		fmt.Println(ui.Done("Autostart disabled"))
	}
	return nil
}
