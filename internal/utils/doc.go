// Package utils provides shared helpers for tcountdown.
//
// # Filesystem Utilities
//
//   - WriteFileAtomic: writes through a temp file and renames over the target
//   - FileExists: reports whether a regular path exists
//
// # String Utilities
//
//   - IsValidServerURL: checks that a WebDAV server is an absolute http(s) URL
//
// # I/O Utilities
//
//   - ReadStdin: reads piped data from standard input
//
// # Terminal Utilities
//
//   - ReadPassword: prompts for a secret without echoing it
package utils
