// Package workflows provides the operations tcountdown exposes to callers.
//
// Workflows coordinate the config store, the credential cipher and the
// WebDAV client. Each operation is independent: it loads what it needs,
// performs a single attempt and returns. Nothing is retried and no state is
// kept between calls.
//
// # Available Workflows
//
// Syncer methods:
//
//   - TestConnection: checks a server and credentials without saving them
//   - SaveRemoteConfig: obfuscates and stores the WebDAV settings
//   - LoadRemoteConfig: returns the server and username, never the password
//   - ClearRemoteConfig: removes the WebDAV settings
//   - Upload: pushes a document to <server>/T-Countdown/data.json
//   - Download: fetches that document, "[]" when nothing was uploaded yet
//
// Local document helpers:
//
//   - LoadLocalData: reads data.json, "[]" when the file is absent
//   - SaveLocalData: overwrites data.json
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the CLI
// layer can tell an unconfigured remote, rejected credentials and network
// failures apart:
//
//	err := syncer.Upload(ctx, doc)
//	if errors.Is(err, kerrors.ErrAuth) {
//	    // Show "check your account and app password"
//	}
//
// # Concurrency
//
// Syncer is safe to use from several goroutines but does not serialize
// operations: two concurrent saves may lose an update, and uploads from
// different machines are last-write-wins. Network calls block for at most
// the client's request timeout; run them off any UI goroutine.
package workflows
