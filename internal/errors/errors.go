package errors

import (
	"errors"
	"fmt"
)

// Local errors indicate failures on this machine.
var (
	// ErrIO indicates a local filesystem read or write failed.
	ErrIO = errors.New("local file operation failed")

	// ErrConfig indicates the configuration could not be persisted.
	ErrConfig = errors.New("failed to save configuration")
)

// Remote errors indicate failures talking to the WebDAV server.
var (
	// ErrNotConfigured indicates a remote operation was attempted with no WebDAV settings.
	ErrNotConfigured = errors.New("webdav is not configured")

	// ErrAuth indicates the server rejected the credentials (HTTP 401 or 403).
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork indicates any other HTTP failure status or a transport failure.
	ErrNetwork = errors.New("network error")
)

// Credential errors indicate problems with stored credentials.
var (
	// ErrDecode indicates an obfuscated credential could not be reversed.
	ErrDecode = errors.New("failed to decode stored credential")

	// ErrInvalidKey indicates a cipher was constructed with unusable key material.
	ErrInvalidKey = errors.New("invalid cipher key")
)

// Platform errors indicate a capability is not available on this OS.
var (
	// ErrAutostartUnsupported indicates autostart registration is not available.
	ErrAutostartUnsupported = errors.New("autostart is only supported on Windows")
)

// AuthError is returned when the server answers 401 or 403.
type AuthError struct {
	Op         string
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, ErrAuth, e.StatusCode)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// NetworkError is returned for non-success statuses and transport failures.
// StatusCode is zero when no response was received.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %s (status %d)", e.Op, e.URL, ErrNetwork, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.URL, ErrNetwork, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.URL, ErrNetwork)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// StatusOf returns the HTTP status carried by err, if any.
func StatusOf(err error) (int, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode, true
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode != 0 {
		return netErr.StatusCode, true
	}

	return 0, false
}
