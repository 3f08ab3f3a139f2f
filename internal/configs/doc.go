// Package configs manages tcountdown's on-disk configuration.
//
// All files live in a single per-user data directory:
//
//   - config.json: WebDAV connection settings (credentials obfuscated)
//   - settings.toml: local preferences (cipher mode, history)
//   - data.json: the synchronized document, opaque to this package
//   - secret.key: key material for the sealed cipher
//   - history.jsonl: record of sync operations
//
// The directory is $TCOUNTDOWN_HOME when set, otherwise
// ~/Documents/T-Countdown. Paths is resolved at startup and may be replaced
// by tests.
//
// # Remote Configuration
//
// AppConfig holds at most one remote, modelled as a tagged variant:
// Configured carries the server URL and the obfuscated username and
// password, Unconfigured means sync has not been set up. Consumers switch on
// the variant rather than checking for nil fields.
//
// Store.Load never fails: a missing, unreadable or corrupt config.json yields
// the default, unconfigured AppConfig. Store.Save rewrites the whole
// document. There is no locking between concurrent writers; the file is
// replaced by rename so readers never observe a partial write.
package configs
