package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/ui"
	"github.com/PolarWolf314/tcountdown/internal/utils"
	"github.com/PolarWolf314/tcountdown/internal/webdav"
	"github.com/PolarWolf314/tcountdown/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner starts a spinner unless verbose or debug output is on.
// FinalMSG does not need a trailing newline; cleanup adds one and prints it
// to stdout after the spinner line is cleared.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadSettings reads settings.toml, falling back to defaults with a warning
// when it cannot be parsed.
func loadSettings() configs.Settings {
	path := configs.Paths.SettingsFilePath
	settings, err := configs.LoadSettings(path)
	if err != nil {
		Logger.Warnf("Ignoring %s: %v", path, err)
	}
	Logger.Debugf("Settings: cipher=%s history=%t", settings.Cipher, settings.History)
	return settings
}

// newSyncer wires the store, cipher and WebDAV client for the current data
// directory.
func newSyncer() (*workflows.Syncer, error) {
	settings := loadSettings()

	c, err := workflows.SelectCipher(settings, configs.Paths.KeyFilePath)
	if err != nil {
		return nil, err
	}

	var opts []workflows.SyncerOption
	if settings.History {
		opts = append(opts, workflows.WithHistory(configs.Paths.HistoryFilePath))
	}

	store := configs.NewStore(configs.Paths.ConfigFilePath)
	client := webdav.New(webdav.WithLogger(Logger))
	Logger.Debugf("Using config %s", store.Path())

	return workflows.NewSyncer(store, c, client, opts...), nil
}

// describeError turns a workflow error into the final message shown to the
// user. The second line, when present, tells them what to do next.
func describeError(action string, err error) string {
	var msg, hint string

	switch {
	case errors.Is(err, kerrors.ErrNotConfigured):
		msg = "WebDAV is not configured"
		hint = "Run " + ui.Code.Sprint("tcountdown remote set") + " first"
	case errors.Is(err, kerrors.ErrAuth):
		msg = action + " failed: the server rejected the credentials"
		hint = "Check the username and app password"
	case errors.Is(err, kerrors.ErrDecode):
		msg = "Stored WebDAV credentials could not be decoded"
		hint = "Run " + ui.Code.Sprint("tcountdown remote set") + " again; the cipher in settings.toml may have changed"
	case errors.Is(err, kerrors.ErrNetwork):
		if status, ok := kerrors.StatusOf(err); ok {
			msg = fmt.Sprintf("%s failed: the server responded with status %d", action, status)
		} else {
			msg = action + " failed: could not reach the server"
			hint = ui.Muted.Sprint(err.Error())
		}
	case errors.Is(err, kerrors.ErrConfig):
		msg = "Could not save the WebDAV settings"
		hint = ui.Muted.Sprint(err.Error())
	case errors.Is(err, kerrors.ErrIO):
		msg = action + " failed: a local file could not be read or written"
		hint = ui.Muted.Sprint(err.Error())
	default:
		msg = fmt.Sprintf("%s failed: %v", action, err)
	}

	if hint == "" {
		return ui.Failed(msg)
	}
	return ui.Failed(msg) + "\n" + ui.Hint(hint)
}

// readDocument returns the contents of path, or stdin when path is empty.
func readDocument(path string) (string, error) {
	if path == "" {
		Logger.Debugf("Reading document from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	Logger.Debugf("Reading document from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	return string(data), nil
}

// formatBytes renders a byte count for final messages.
func formatBytes(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

// resolvePassword returns the --password value when given, otherwise
// prompts for it without echo.
func resolvePassword(flagValue string, flagSet bool) (string, error) {
	if flagSet {
		return flagValue, nil
	}
	password, err := utils.ReadPassword("WebDAV password: ")
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return password, nil
}
