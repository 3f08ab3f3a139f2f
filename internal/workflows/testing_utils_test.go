package workflows

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolarWolf314/tcountdown/internal/cipher"
	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/PolarWolf314/tcountdown/internal/webdav"

	xwebdav "golang.org/x/net/webdav"
)

const (
	testUser     = "u"
	testPassword = "p"
)

// newDAVServer starts an in-memory WebDAV server guarded by Basic auth.
func newDAVServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := &xwebdav.Handler{
		FileSystem: xwebdav.NewMemFS(),
		LockSystem: xwebdav.NewMemLS(),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != testUser || pass != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

// newStatusServer answers every request with status.
func newStatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

// unreachableURL returns the address of a server that has been shut down.
func unreachableURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

func newTestSyncer(t *testing.T, opts ...SyncerOption) (*Syncer, *configs.Store) {
	t.Helper()
	store := configs.NewStore(filepath.Join(t.TempDir(), "config.json"))
	client := webdav.New(webdav.WithTimeout(5 * time.Second))
	return NewSyncer(store, cipher.Default(), client, opts...), store
}

// newStatusServerFunc answers each request with the status chosen by respond.
func newStatusServerFunc(t *testing.T, respond func(r *http.Request) int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(respond(r))
	}))
	t.Cleanup(server.Close)
	return server
}

func configsSettings(cipherName string) configs.Settings {
	settings := configs.DefaultSettings()
	settings.Cipher = cipherName
	return settings
}
