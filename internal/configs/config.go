package configs

import (
	"encoding/json"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/utils"
)

// Remote is either Configured or Unconfigured.
type Remote interface {
	isRemote()
}

// Configured holds a WebDAV endpoint. Username and Password are obfuscated.
type Configured struct {
	Server   string
	Username string
	Password string
}

// Unconfigured means no WebDAV endpoint has been set up.
type Unconfigured struct{}

func (Configured) isRemote()   {}
func (Unconfigured) isRemote() {}

type AppConfig struct {
	Remote Remote
}

// webdavRecord is the on-disk shape of a Configured remote.
type webdavRecord struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type appConfigFile struct {
	WebDAV *webdavRecord `json:"webdav"`
}

// DefaultAppConfig returns the first-run configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{Remote: Unconfigured{}}
}

// RemoteConfig returns the configured remote, if any.
func (c AppConfig) RemoteConfig() (Configured, bool) {
	remote, ok := c.Remote.(Configured)
	return remote, ok
}

func (c AppConfig) MarshalJSON() ([]byte, error) {
	var file appConfigFile

	switch remote := c.Remote.(type) {
	case Configured:
		file.WebDAV = &webdavRecord{
			Server:   remote.Server,
			Username: remote.Username,
			Password: remote.Password,
		}
	case Unconfigured, nil:
	default:
		return nil, fmt.Errorf("unknown remote type %T", remote)
	}

	return json.Marshal(file)
}

func (c *AppConfig) UnmarshalJSON(data []byte) error {
	var file appConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.WebDAV == nil {
		c.Remote = Unconfigured{}
		return nil
	}

	c.Remote = Configured{
		Server:   file.WebDAV.Server,
		Username: file.WebDAV.Username,
		Password: file.WebDAV.Password,
	}
	return nil
}

// Store reads and writes config.json.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored configuration, or the default on any failure.
func (s *Store) Load() AppConfig {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultAppConfig()
	}

	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultAppConfig()
	}
	if config.Remote == nil {
		config.Remote = Unconfigured{}
	}

	return config
}

// Save overwrites config.json with the whole document.
func (s *Store) Save(config AppConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := utils.WriteFileAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: saving %s: %w", kerrors.ErrIO, s.path, err)
	}

	return nil
}
