// Package errors provides typed error values for tcountdown.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Remote
// failures additionally carry the HTTP status code through the AuthError
// and NetworkError types.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Local errors: filesystem and config persistence (ErrIO, ErrConfig)
//   - Remote errors: WebDAV failures (ErrNotConfigured, ErrAuth, ErrNetwork)
//   - Credential errors: stored credentials cannot be reversed (ErrDecode)
//   - Platform errors: missing OS capabilities (ErrAutostartUnsupported)
//
// # Usage
//
// Handle errors in the CLI layer:
//
//	err := syncer.Upload(ctx, doc)
//	switch {
//	case errors.Is(err, kerrors.ErrNotConfigured):
//	    // Suggest `tcountdown remote set`
//	case errors.Is(err, kerrors.ErrAuth):
//	    // Suggest checking the account and app password
//	}
//
// Read the status code of a failed request:
//
//	if status, ok := kerrors.StatusOf(err); ok {
//	    fmt.Printf("server answered %d\n", status)
//	}
package errors
