package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/PolarWolf314/tcountdown/internal/configs"
	"github.com/spf13/cobra"

	xwebdav "golang.org/x/net/webdav"
)

const (
	testUser     = "alice"
	testPassword = "app-password-123"
)

// setupTestEnvironment points every local file at a fresh temp directory
// and resets command state. Both are restored when the test ends.
func setupTestEnvironment(t *testing.T) *configs.AppSettings {
	t.Helper()

	originalPaths := configs.Paths
	configs.Paths = configs.NewAppSettings(t.TempDir())
	ResetGlobalState()

	t.Cleanup(func() {
		configs.Paths = originalPaths
		ResetGlobalState()
	})

	return configs.Paths
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI executes tcountdown with args on a fresh root command.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	ResetGlobalState()

	rootCmd := &cobra.Command{Use: "tcountdown"}
	rootCmd.AddCommand(Commands()...)
	rootCmd.SetArgs(args)

	output, err := captureOutput(func() error {
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("tcountdown %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}

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

// configureRemote saves server as the remote without contacting it.
func configureRemote(t *testing.T, server string) {
	t.Helper()
	runCLI(t, "remote", "set", "--server", server, "--username", testUser, "--password", testPassword, "--skip-test")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
