// Package webdav is a minimal, stateless WebDAV client for mirroring a
// single JSON document.
//
// Every request carries HTTP Basic credentials and goes through an
// http.Client with a fixed total timeout (DefaultTimeout). Only four
// operations are needed:
//
//   - Test: PROPFIND with Depth 0 against the base URL
//   - EnsureFolder: MKCOL on the app folder, failures ignored
//   - Put: upload the document
//   - Get: download the document, where 404 means "nothing uploaded yet"
//
// The remote layout is <server>/T-Countdown/data.json. Server URLs are
// normalized to end with a slash before names are appended.
//
// Failures are reported as *errors.AuthError (401/403 on Test) or
// *errors.NetworkError (any other status, or no response at all).
package webdav
