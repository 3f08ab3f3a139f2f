package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/tcountdown/internal/utils"
)

const (
	// AppName names the data directory, the remote folder and the autostart entry.
	AppName = "T-Countdown"

	// HomeEnv overrides the data directory.
	HomeEnv = "TCOUNTDOWN_HOME"

	CipherXOR    = "xor"
	CipherSealed = "sealed"
)

// AppSettings holds the resolved locations of every local file.
type AppSettings struct {
	DataDir          string
	DataFilePath     string
	ConfigFilePath   string
	SettingsFilePath string
	KeyFilePath      string
	HistoryFilePath  string
}

// Settings are the user preferences stored in settings.toml.
type Settings struct {
	Cipher  string `toml:"cipher" json:"cipher"`
	History bool   `toml:"history" json:"history"`
}

var Paths *AppSettings

func init() {
	Paths = NewAppSettings(ResolveDataDir())
}

// ResolveDataDir returns the per-user directory holding all local files.
func ResolveDataDir() string {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		// Fall back to the working directory rather than failing at startup.
		return AppName
	}

	return filepath.Join(homeDir, "Documents", AppName)
}

func NewAppSettings(dataDir string) *AppSettings {
	return &AppSettings{
		DataDir:          dataDir,
		DataFilePath:     filepath.Join(dataDir, "data.json"),
		ConfigFilePath:   filepath.Join(dataDir, "config.json"),
		SettingsFilePath: filepath.Join(dataDir, "settings.toml"),
		KeyFilePath:      filepath.Join(dataDir, "secret.key"),
		HistoryFilePath:  filepath.Join(dataDir, "history.jsonl"),
	}
}

func DefaultSettings() Settings {
	return Settings{
		Cipher:  CipherXOR,
		History: true,
	}
}

// LoadSettings reads settings.toml. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	if !utils.FileExists(path) {
		return settings, nil
	}

	if err := LoadTOML(path, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}

	return settings, nil
}

// SaveSettings writes settings.toml.
func SaveSettings(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (s Settings) Validate() error {
	switch s.Cipher {
	case CipherXOR, CipherSealed:
		return nil
	default:
		return fmt.Errorf("invalid cipher %q (must be %q or %q)", s.Cipher, CipherXOR, CipherSealed)
	}
}
