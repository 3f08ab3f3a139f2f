// Package logger provides leveled, colored logging for tcountdown commands.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always written to stderr.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal packages that accept a Debugf-style interface:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Uploading %d bytes", len(doc))
package logger
