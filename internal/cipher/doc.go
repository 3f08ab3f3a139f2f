// Package cipher protects short credentials stored in config.json.
//
// Two implementations share the Cipher interface:
//
//   - XOR: repeating-key XOR followed by standard padded base64. This is
//     obfuscation only. It keeps credentials from being human-readable in
//     the config file and is compatible with files written by earlier
//     releases when constructed with DefaultKey.
//   - Sealed: NaCl secretbox with a random nonce and a per-installation
//     32-byte key kept in secret.key next to the config. Use it when the
//     config file may be read by someone who also has the binary.
//
// Values produced by one implementation cannot be revealed by the other;
// Reveal reports ErrDecode and the remote settings must be saved again.
package cipher
