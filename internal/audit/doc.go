// Package audit records a history of sync operations.
//
// Every remote operation (test, upload, download) and every change to the
// remote settings (set, clear) appends one entry to a JSON Lines file in the
// data directory:
//
//	~/Documents/T-Countdown/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - A random operation ID
//   - Operation name and server URL
//   - Outcome, HTTP status when one was received, byte count and error text
//
// Credentials are never written to the history.
//
// # Failure Handling
//
// History logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the history for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
