// Package cmd implements the tcountdown command line.
package cmd

import (
	logger "github.com/PolarWolf314/tcountdown/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// addLoggingFlags registers --verbose and --debug on a command group and
// builds Logger before any of its subcommands run.
func addLoggingFlags(group *cobra.Command) {
	group.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	group.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	group.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
	}
}

// Commands returns every top-level command group.
func Commands() []*cobra.Command {
	return []*cobra.Command{DataCmd, RemoteCmd, SettingsCmd, AutostartCmd, HistoryCmd}
}

// ResetGlobalState resets all command state for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetDataState()
	resetRemoteState()
	resetHistoryState()
	resetSettingsState()
	for _, group := range Commands() {
		resetCobraFlagState(group)
	}
}

// resetCobraFlagState clears the Changed bit on every flag below c so a
// previous Execute does not leak into the next one.
func resetCobraFlagState(c *cobra.Command) {
	unmark := func(flag *pflag.Flag) { flag.Changed = false }
	c.Flags().VisitAll(unmark)
	c.PersistentFlags().VisitAll(unmark)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
