package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/webdav"
)

// RemoteSummary is what callers may see of the stored remote.
type RemoteSummary struct {
	Server   string `json:"server"`
	Username string `json:"username"`
}

// TestConnection checks server and credentials without touching the config.
//
// Returns an error matching ErrAuth for 401/403 and ErrNetwork otherwise.
func (s *Syncer) TestConnection(ctx context.Context, server, username, password string) error {
	err := s.client.Test(ctx, server, webdav.Credentials{Username: username, Password: password})
	s.record("test", server, 0, err)
	if err != nil {
		return fmt.Errorf("testing connection to %s: %w", server, err)
	}
	return nil
}

// SaveRemoteConfig replaces the stored remote.
//
// Returns an error matching ErrConfig if the credentials cannot be encoded
// or the config cannot be written.
func (s *Syncer) SaveRemoteConfig(ctx context.Context, server, username, password string) error {
	err := s.saveRemoteConfig(server, username, password)
	s.record("set", server, 0, err)
	return err
}

func (s *Syncer) saveRemoteConfig(server, username, password string) error {
	config := s.store.Load()

	encodedUser, err := s.cipher.Obfuscate(username)
	if err != nil {
		return fmt.Errorf("%w: encoding username: %w", kerrors.ErrConfig, err)
	}
	encodedPass, err := s.cipher.Obfuscate(password)
	if err != nil {
		return fmt.Errorf("%w: encoding password: %w", kerrors.ErrConfig, err)
	}

	config.Remote = configs.Configured{
		Server:   server,
		Username: encodedUser,
		Password: encodedPass,
	}

	if err := s.store.Save(config); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrConfig, err)
	}
	return nil
}

// LoadRemoteConfig returns the stored server and username. The boolean is
// false when no remote is configured. The password is never returned.
//
// Returns an error matching ErrDecode if the stored username is corrupt.
func (s *Syncer) LoadRemoteConfig(ctx context.Context) (RemoteSummary, bool, error) {
	remote, ok := s.store.Load().RemoteConfig()
	if !ok {
		return RemoteSummary{}, false, nil
	}

	username, err := s.cipher.Reveal(remote.Username)
	if err != nil {
		return RemoteSummary{}, false, fmt.Errorf("revealing username: %w", err)
	}

	return RemoteSummary{Server: remote.Server, Username: username}, true, nil
}

// ClearRemoteConfig removes the stored remote. Clearing an unconfigured
// remote succeeds.
func (s *Syncer) ClearRemoteConfig(ctx context.Context) error {
	config := s.store.Load()

	var server string
	if remote, ok := config.RemoteConfig(); ok {
		server = remote.Server
	}
	config.Remote = configs.Unconfigured{}

	err := s.store.Save(config)
	if err != nil {
		err = fmt.Errorf("%w: %w", kerrors.ErrConfig, err)
	}
	s.record("clear", server, 0, err)
	return err
}
