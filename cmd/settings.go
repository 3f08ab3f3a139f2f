package cmd

import (
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/spf13/cobra"
)

var (
	settingsJSON    bool
	settingsCipher  string
	settingsHistory bool
)

// SettingsCmd groups the settings.toml commands.
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tcountdown preferences",
	Long: `Reads and writes settings.toml in the data directory.

  cipher   how WebDAV credentials are stored: "xor" (default) or "sealed"
  history  record sync operations in history.jsonl (default true)

Examples:
  # Encrypt stored credentials with a per-installation key
  tcountdown settings set --cipher sealed

  # Stop recording history
  tcountdown settings set --history=false`,
}

func init() {
	addLoggingFlags(SettingsCmd)

	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "output in JSON format")
	settingsSetCmd.Flags().StringVar(&settingsCipher, "cipher", "", `credential cipher, "xor" or "sealed"`)
	settingsSetCmd.Flags().BoolVar(&settingsHistory, "history", true, "record sync operations")

	SettingsCmd.AddCommand(settingsShowCmd)
	SettingsCmd.AddCommand(settingsSetCmd)
}

func resetSettingsState() {
	settingsJSON = false
	settingsCipher = ""
	settingsHistory = true
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings()

		if settingsJSON {
			return printJSON(settings)
		}

		fmt.Printf("Cipher:  %s\n", ui.Highlight.Sprint(settings.Cipher))
		fmt.Printf("History: %t\n", settings.History)
		fmt.Printf("File:    %s\n", ui.Path.Sprint(configs.Paths.SettingsFilePath))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	Long: `Updates settings.toml. Only the flags given are changed.

Switching the cipher does not convert stored credentials: run
'tcountdown remote set' again afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cipherChanged := cmd.Flags().Changed("cipher")
		historyChanged := cmd.Flags().Changed("history")
		if !cipherChanged && !historyChanged {
			fmt.Println(ui.Failed("Nothing to change"))
			fmt.Println(ui.Hint("Pass " + ui.Flag.Sprint("--cipher") + " or " + ui.Flag.Sprint("--history")))
			return nil
		}

		settings := loadSettings()
		previousCipher := settings.Cipher
		if cipherChanged {
			settings.Cipher = settingsCipher
		}
		if historyChanged {
			settings.History = settingsHistory
		}

		path := configs.Paths.SettingsFilePath
		if err := configs.SaveSettings(path, settings); err != nil {
			fmt.Println(ui.Failed("Could not save settings"))
			fmt.Println(ui.Hint(ui.Muted.Sprint(err.Error())))
			return nil
		}
		Logger.Infof("Saved %s", path)

		fmt.Println(ui.Done("Settings saved to " + ui.Path.Sprint(path)))

		_, configured := configs.NewStore(configs.Paths.ConfigFilePath).Load().RemoteConfig()
		if settings.Cipher != previousCipher && configured {
			fmt.Println(ui.Warning.Sprint("!") + " Stored WebDAV credentials still use the " + previousCipher + " cipher")
			fmt.Println(ui.Hint("Run " + ui.Code.Sprint("tcountdown remote set") + " again to re-save them"))
		}
		return nil
	},
}
