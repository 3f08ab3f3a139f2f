package workflows

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PolarWolf314/tcountdown/internal/audit"
	"github.com/PolarWolf314/tcountdown/internal/cipher"
	"github.com/PolarWolf314/tcountdown/internal/configs"
	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"github.com/PolarWolf314/tcountdown/internal/webdav"
)

// Syncer composes the config store, the cipher and the WebDAV client.
type Syncer struct {
	store       *configs.Store
	cipher      cipher.Cipher
	client      *webdav.Client
	historyPath string
}

type SyncerOption func(*Syncer)

// WithHistory records every operation in the JSON Lines file at path.
func WithHistory(path string) SyncerOption {
	return func(s *Syncer) {
		s.historyPath = path
	}
}

func NewSyncer(store *configs.Store, c cipher.Cipher, client *webdav.Client, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		store:  store,
		cipher: c,
		client: client,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectCipher builds the cipher named in settings. The sealed cipher's key
// is loaded from keyPath, or created there on first use.
func SelectCipher(settings configs.Settings, keyPath string) (cipher.Cipher, error) {
	switch settings.Cipher {
	case configs.CipherSealed:
		key, err := cipher.LoadOrCreateKey(keyPath)
		if err != nil {
			return nil, fmt.Errorf("loading sealed cipher key: %w", err)
		}
		return cipher.NewSealed(key), nil
	case configs.CipherXOR, "":
		return cipher.Default(), nil
	default:
		return nil, fmt.Errorf("unknown cipher %q", settings.Cipher)
	}
}

// credentials loads the configured remote and reveals its credentials.
func (s *Syncer) credentials() (string, webdav.Credentials, error) {
	remote, ok := s.store.Load().RemoteConfig()
	if !ok {
		return "", webdav.Credentials{}, kerrors.ErrNotConfigured
	}

	username, err := s.cipher.Reveal(remote.Username)
	if err != nil {
		return remote.Server, webdav.Credentials{}, fmt.Errorf("revealing username: %w", err)
	}
	password, err := s.cipher.Reveal(remote.Password)
	if err != nil {
		return remote.Server, webdav.Credentials{}, fmt.Errorf("revealing password: %w", err)
	}

	return remote.Server, webdav.Credentials{Username: username, Password: password}, nil
}

func (s *Syncer) record(op, server string, bytes int, err error) {
	if s.historyPath == "" {
		return
	}

	redacted := redactServer(server)
	entry := audit.Entry{
		Operation: op,
		Server:    redacted,
		Success:   err == nil,
		Bytes:     bytes,
	}
	if err != nil {
		entry.Error = err.Error()
		if redacted != server {
			entry.Error = strings.ReplaceAll(entry.Error, server, redacted)
		}
		entry.Status, _ = kerrors.StatusOf(err)
	}

	audit.Log(s.historyPath, entry)
}

// redactServer drops any userinfo from server so history never holds
// credentials embedded in the URL.
func redactServer(server string) string {
	u, err := url.Parse(server)
	if err != nil || u.User == nil {
		return server
	}
	u.User = nil
	return u.String()
}
