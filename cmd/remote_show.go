package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/webdav"
	"github.com/spf13/cobra"
)

var remoteShowJSON bool

func init() {
	remoteShowCmd.Flags().BoolVar(&remoteShowJSON, "json", false, "output in JSON format")
}

// remoteShowResult is the --json output of remote show.
type remoteShowResult struct {
	Configured bool   `json:"configured"`
	Server     string `json:"server,omitempty"`
	Username   string `json:"username,omitempty"`
	Document   string `json:"document,omitempty"`
}

var remoteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved WebDAV server and username",
	Long:  `Shows the saved server and username. The password is never shown.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, err := newSyncer()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up sync: %v", err)
		}

		summary, configured, err := syncer.LoadRemoteConfig(cmd.Context())
		if err != nil {
			if remoteShowJSON {
				return printJSON(map[string]string{"error": err.Error()})
			}
			fmt.Println(describeError("Loading", err))
			return nil
		}

		result := remoteShowResult{Configured: configured}
		if configured {
			result.Server = summary.Server
			result.Username = summary.Username
			result.Document = webdav.ObjectURL(summary.Server)
		}

		if remoteShowJSON {
			return printJSON(result)
		}

		if !configured {
			fmt.Println(ui.Failed("WebDAV is not configured"))
			fmt.Println(ui.Hint("Run " + ui.Code.Sprint("tcountdown remote set") + " to add a server"))
			return nil
		}

		fmt.Printf("Server:   %s\n", ui.URL.Sprint(result.Server))
		fmt.Printf("Username: %s\n", ui.Highlight.Sprint(result.Username))
		fmt.Printf("Document: %s\n", ui.Muted.Sprint(result.Document))
		return nil
	},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to encode JSON: %v", err)
	}
	fmt.Println(string(data))
	return nil
}
